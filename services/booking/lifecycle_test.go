package booking

import (
	"testing"

	"educonnect/models"
	"educonnect/services/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func bookPending(t *testing.T, svc *DefaultBookingService, ids testIDs, start, end string) *models.Session {
	t.Helper()
	session, err := svc.BookSession(ids.studentUserID, BookSessionInput{
		TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: start, End: end,
	})
	require.NoError(t, err)
	return session
}

func TestDecideSessionApprove(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	confirmed, err := svc.DecideSession(session.ID, ids.tutorUserID, true)
	require.NoError(t, err)
	assert.Equal(t, models.SessionConfirmed, confirmed.Status)

	// A decided session cannot be decided again.
	_, err = svc.DecideSession(session.ID, ids.tutorUserID, true)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestDecideSessionDecline(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	declined, err := svc.DecideSession(session.ID, ids.tutorUserID, false)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCanceled, declined.Status)
}

func TestDecideSessionRequiresOwningTutor(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	_, err := svc.DecideSession(session.ID, primitive.NewObjectID(), true)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestCompleteSessionCreditsEarningsOnce(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	_, err := svc.DecideSession(session.ID, ids.tutorUserID, true)
	require.NoError(t, err)

	completed, err := svc.CompleteSession(session.ID, ids.tutorUserID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, completed.Status)
	assert.Equal(t, models.PaymentPaid, completed.PaymentStatus)

	tutor, err := svc.Tutors.GetByID(ids.tutorID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, tutor.Earnings)

	// Completing again must neither succeed nor double-credit.
	_, err = svc.CompleteSession(session.ID, ids.tutorUserID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	tutor, err = svc.Tutors.GetByID(ids.tutorID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, tutor.Earnings, "earnings credited exactly once")
}

func TestCompleteSessionRequiresConfirmed(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	_, err := svc.CompleteSession(session.ID, ids.tutorUserID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	tutor, err := svc.Tutors.GetByID(ids.tutorID)
	require.NoError(t, err)
	assert.Zero(t, tutor.Earnings)
}

func TestCancelSession(t *testing.T) {
	svc, ids := newTestBookingService(t)

	// Student cancels a pending session.
	pending := bookPending(t, svc, ids, "09:00", "10:00")
	canceled, err := svc.CancelSession(pending.ID, ids.studentUserID, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCanceled, canceled.Status)

	// Tutor cancels a confirmed session.
	confirmed := bookPending(t, svc, ids, "11:00", "12:00")
	_, err = svc.DecideSession(confirmed.ID, ids.tutorUserID, true)
	require.NoError(t, err)
	canceled, err = svc.CancelSession(confirmed.ID, ids.tutorUserID, models.RoleTutor)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCanceled, canceled.Status)

	// Canceling twice conflicts.
	_, err = svc.CancelSession(confirmed.ID, ids.tutorUserID, models.RoleTutor)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestCancelCompletedSessionRejected(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	_, err := svc.DecideSession(session.ID, ids.tutorUserID, true)
	require.NoError(t, err)
	_, err = svc.CompleteSession(session.ID, ids.tutorUserID)
	require.NoError(t, err)

	_, err = svc.CancelSession(session.ID, ids.studentUserID, models.RoleStudent)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestUpdateSessionReschedule(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	start, end := "14:00", "15:00"
	updated, err := svc.UpdateSession(session.ID, ids.studentUserID, models.RoleStudent, UpdateSessionInput{
		Start: &start,
		End:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, "14:00 - 15:00", updated.TimeSlot)
	assert.Equal(t, session.Date, updated.Date)
}

func TestUpdateSessionOverlapRejected(t *testing.T) {
	svc, ids := newTestBookingService(t)
	bookPending(t, svc, ids, "09:00", "10:00")
	second := bookPending(t, svc, ids, "11:00", "12:00")

	// Moving the second session onto the first must fail.
	start, end := "09:30", "10:30"
	_, err := svc.UpdateSession(second.ID, ids.studentUserID, models.RoleStudent, UpdateSessionInput{
		Start: &start,
		End:   &end,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestUpdateSessionNotesOnlyKeepsSlot(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	notes := "bring the practice set"
	updated, err := svc.UpdateSession(session.ID, ids.studentUserID, models.RoleStudent, UpdateSessionInput{
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, "09:00 - 10:00", updated.TimeSlot, "its own slot is not a conflict")
}

func TestUpdateSessionTerminalRejected(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	_, err := svc.CancelSession(session.ID, ids.studentUserID, models.RoleStudent)
	require.NoError(t, err)

	notes := "too late"
	_, err = svc.UpdateSession(session.ID, ids.studentUserID, models.RoleStudent, UpdateSessionInput{Notes: &notes})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestGetSessionForEnforcesOwnership(t *testing.T) {
	svc, ids := newTestBookingService(t)
	session := bookPending(t, svc, ids, "09:00", "10:00")

	got, err := svc.GetSessionFor(session.ID, ids.studentUserID, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = svc.GetSessionFor(session.ID, primitive.NewObjectID(), models.RoleStudent)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	_, err = svc.GetSessionFor(primitive.NewObjectID(), ids.studentUserID, models.RoleStudent)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
