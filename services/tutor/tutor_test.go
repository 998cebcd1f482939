package tutor

import (
	"testing"

	sessionRepo "educonnect/database/repository/session"
	tutorRepo "educonnect/database/repository/tutor"
	"educonnect/models"
	"educonnect/services/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTutorRepo struct {
	tutorRepo.TutorRepository
	tutors map[primitive.ObjectID]*models.TutorProfile
}

func (f *fakeTutorRepo) GetByID(id primitive.ObjectID) (*models.TutorProfile, error) {
	t, ok := f.tutors[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTutorRepo) GetByUserID(userID primitive.ObjectID) (*models.TutorProfile, error) {
	for _, t := range f.tutors {
		if t.UserID == userID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTutorRepo) Update(profile *models.TutorProfile) error {
	cp := *profile
	f.tutors[profile.ID] = &cp
	return nil
}

type fakeSessionCounts struct {
	sessionRepo.SessionRepository
	counts map[string]int64
}

func (f *fakeSessionCounts) CountByTutorAndStatus(tutorID primitive.ObjectID, status string) (int64, error) {
	return f.counts[status], nil
}

func newTestTutorService() (*DefaultTutorService, primitive.ObjectID, primitive.ObjectID) {
	tutorID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	repo := &fakeTutorRepo{tutors: map[primitive.ObjectID]*models.TutorProfile{
		tutorID: {ID: tutorID, UserID: userID, HourlyRate: 40, Earnings: 120},
	}}
	sessions := &fakeSessionCounts{counts: map[string]int64{
		models.SessionCompleted: 3,
		models.SessionPending:   1,
		models.SessionConfirmed: 2,
	}}
	return &DefaultTutorService{Repo: repo, Sessions: sessions}, tutorID, userID
}

func TestGetEarnings(t *testing.T) {
	svc, _, userID := newTestTutorService()

	summary, err := svc.GetEarnings(userID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, summary.TotalEarnings)
	assert.Equal(t, 3, summary.CompletedSessions)
	assert.Equal(t, 1, summary.PendingSessions)
	assert.Equal(t, 2, summary.ConfirmedSessions)
}

func TestGetEarningsWithoutProfile(t *testing.T) {
	svc, _, _ := newTestTutorService()

	_, err := svc.GetEarnings(primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateOwnProfile(t *testing.T) {
	svc, tutorID, userID := newTestTutorService()

	bio := "  ten years teaching calculus  "
	rate := 55.0
	profile, err := svc.UpdateOwnProfile(userID, ProfileUpdate{Bio: &bio, HourlyRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "ten years teaching calculus", profile.Bio)
	assert.Equal(t, 55.0, profile.HourlyRate)
	assert.Equal(t, tutorID, profile.ID)
}

func TestUpdateOwnProfileRejectsBadRate(t *testing.T) {
	svc, _, userID := newTestTutorService()

	for _, rate := range []float64{0, -10} {
		r := rate
		_, err := svc.UpdateOwnProfile(userID, ProfileUpdate{HourlyRate: &r})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestSearchTutorsValidatesBounds(t *testing.T) {
	svc, _, _ := newTestTutorService()

	_, err := svc.SearchTutors(models.TutorSearchFilter{MinRate: 80, MaxRate: 40})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = svc.SearchTutors(models.TutorSearchFilter{MinRate: -1})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
