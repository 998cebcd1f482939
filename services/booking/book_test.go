package booking

import (
	"testing"

	"educonnect/models"
	"educonnect/services/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookSession(t *testing.T) {
	svc, ids := newTestBookingService(t)

	session, err := svc.BookSession(ids.studentUserID, BookSessionInput{
		TutorID: ids.tutorID.Hex(),
		Date:    "2030-05-01",
		Start:   "09:00",
		End:     "10:00",
		Subject: "algebra",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SessionPending, session.Status)
	assert.Equal(t, models.SessionOnline, session.Type)
	assert.Equal(t, models.PaymentUnpaid, session.PaymentStatus)
	assert.Equal(t, "09:00 - 10:00", session.TimeSlot)
	assert.Equal(t, ids.studentID, session.StudentID)
	assert.Equal(t, 40.0, session.Amount, "amount snapshots the tutor's rate")
	assert.False(t, session.ID.IsZero())
}

func TestBookSessionOverlapRejected(t *testing.T) {
	svc, ids := newTestBookingService(t)

	_, err := svc.BookSession(ids.studentUserID, BookSessionInput{
		TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: "09:00", End: "10:00",
	})
	require.NoError(t, err)

	cases := []struct{ start, end string }{
		{"09:00", "10:00"}, // exact duplicate
		{"09:30", "10:30"}, // tail overlap
		{"08:30", "09:30"}, // head overlap
		{"09:00", "09:30"}, // same start, shorter
		{"08:00", "11:00"}, // engulfing
	}
	for _, tc := range cases {
		_, err := svc.BookSession(ids.studentUserID, BookSessionInput{
			TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: tc.start, End: tc.end,
		})
		require.Error(t, err, "slot %s-%s", tc.start, tc.end)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	}

	// Adjacent slots are fine.
	_, err = svc.BookSession(ids.studentUserID, BookSessionInput{
		TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: "10:00", End: "11:00",
	})
	require.NoError(t, err)
}

func TestBookSessionCanceledSlotIsReusable(t *testing.T) {
	svc, ids := newTestBookingService(t)

	first, err := svc.BookSession(ids.studentUserID, BookSessionInput{
		TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: "09:00", End: "10:00",
	})
	require.NoError(t, err)

	_, err = svc.CancelSession(first.ID, ids.studentUserID, models.RoleStudent)
	require.NoError(t, err)

	_, err = svc.BookSession(ids.studentUserID, BookSessionInput{
		TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: "09:00", End: "10:00",
	})
	require.NoError(t, err, "canceled sessions do not block the slot")
}

func TestBookSessionValidation(t *testing.T) {
	svc, ids := newTestBookingService(t)

	cases := []struct {
		name  string
		input BookSessionInput
		kind  apperrors.Kind
	}{
		{
			"past date",
			BookSessionInput{TutorID: ids.tutorID.Hex(), Date: "2020-01-01", Start: "09:00", End: "10:00"},
			apperrors.KindValidation,
		},
		{
			"end before start",
			BookSessionInput{TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: "10:00", End: "09:00"},
			apperrors.KindValidation,
		},
		{
			"zero length",
			BookSessionInput{TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: "09:00", End: "09:00"},
			apperrors.KindValidation,
		},
		{
			"bad type",
			BookSessionInput{TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: "09:00", End: "10:00", Type: "hologram"},
			apperrors.KindValidation,
		},
		{
			"unknown tutor",
			BookSessionInput{TutorID: "000000000000000000000000", Date: "2030-05-01", Start: "09:00", End: "10:00"},
			apperrors.KindNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BookSession(ids.studentUserID, tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.kind, apperrors.KindOf(err))
		})
	}
}

func TestBookSessionNotifiesTutor(t *testing.T) {
	svc, ids := newTestBookingService(t)
	notifier := svc.Notifier.(*recordingNotifier)

	_, err := svc.BookSession(ids.studentUserID, BookSessionInput{
		TutorID: ids.tutorID.Hex(), Date: "2030-05-01", Start: "09:00", End: "10:00",
	})
	require.NoError(t, err)
	require.Len(t, notifier.delivered, 1)
	assert.Equal(t, "New session request", notifier.delivered[0])
}
