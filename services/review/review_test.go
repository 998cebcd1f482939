package review

import (
	"testing"
	"time"

	sessionRepo "educonnect/database/repository/session"
	studentRepo "educonnect/database/repository/student"
	tutorRepo "educonnect/database/repository/tutor"
	"educonnect/models"
	"educonnect/services/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The fakes embed the repository interfaces so only the methods this
// service touches need implementations.

type fakeReviewRepo struct {
	reviews map[string]*models.Review // keyed by student+tutor pair
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func pairKey(studentID, tutorID primitive.ObjectID) string {
	return studentID.Hex() + "/" + tutorID.Hex()
}

func (f *fakeReviewRepo) Upsert(review *models.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	cp := *review
	f.reviews[pairKey(review.StudentID, review.TutorID)] = &cp
	return nil
}

func (f *fakeReviewRepo) ListByTutor(tutorID primitive.ObjectID) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.TutorID == tutorID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) AggregateForTutor(tutorID primitive.ObjectID) (float64, int, error) {
	var sum, count int
	for _, r := range f.reviews {
		if r.TutorID == tutorID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

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

func (f *fakeTutorRepo) SetRating(id primitive.ObjectID, average float64, count int) error {
	if t, ok := f.tutors[id]; ok {
		t.AverageRating = average
		t.RatingCount = count
	}
	return nil
}

type fakeStudentRepo struct {
	studentRepo.StudentRepository
	students map[primitive.ObjectID]*models.StudentProfile
}

func (f *fakeStudentRepo) GetByUserID(userID primitive.ObjectID) (*models.StudentProfile, error) {
	for _, s := range f.students {
		if s.UserID == userID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessionRepo.SessionRepository
	sessions []models.Session
}

func (f *fakeSessionRepo) ListByStudent(studentID primitive.ObjectID) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.StudentID == studentID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fixture struct {
	svc           *DefaultReviewService
	tutors        *fakeTutorRepo
	sessions      *fakeSessionRepo
	tutorID       primitive.ObjectID
	studentID     primitive.ObjectID
	studentUserID primitive.ObjectID
}

func newFixture() *fixture {
	f := &fixture{
		tutorID:       primitive.NewObjectID(),
		studentID:     primitive.NewObjectID(),
		studentUserID: primitive.NewObjectID(),
	}
	f.tutors = &fakeTutorRepo{tutors: map[primitive.ObjectID]*models.TutorProfile{
		f.tutorID: {ID: f.tutorID, HourlyRate: 40},
	}}
	students := &fakeStudentRepo{students: map[primitive.ObjectID]*models.StudentProfile{
		f.studentID: {ID: f.studentID, UserID: f.studentUserID},
	}}
	f.sessions = &fakeSessionRepo{}
	f.svc = &DefaultReviewService{
		Repo:     newFakeReviewRepo(),
		Tutors:   f.tutors,
		Students: students,
		Sessions: f.sessions,
	}
	return f
}

func (f *fixture) addSession(status string) {
	f.sessions.sessions = append(f.sessions.sessions, models.Session{
		ID:        primitive.NewObjectID(),
		StudentID: f.studentID,
		TutorID:   f.tutorID,
		Status:    status,
		StartTime: time.Now().Add(-24 * time.Hour),
	})
}

func TestSubmitReview(t *testing.T) {
	f := newFixture()
	f.addSession(models.SessionCompleted)

	review, err := f.svc.SubmitReview(f.studentUserID, ReviewInput{
		TutorID: f.tutorID.Hex(),
		Rating:  5,
		Comment: "great explanations",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.False(t, review.SessionID.IsZero())

	tutor, err := f.tutors.GetByID(f.tutorID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, tutor.AverageRating)
	assert.Equal(t, 1, tutor.RatingCount)
}

func TestSubmitReviewReplacesPrevious(t *testing.T) {
	f := newFixture()
	f.addSession(models.SessionCompleted)

	_, err := f.svc.SubmitReview(f.studentUserID, ReviewInput{TutorID: f.tutorID.Hex(), Rating: 5})
	require.NoError(t, err)
	_, err = f.svc.SubmitReview(f.studentUserID, ReviewInput{TutorID: f.tutorID.Hex(), Rating: 3})
	require.NoError(t, err)

	tutor, err := f.tutors.GetByID(f.tutorID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, tutor.AverageRating, "re-submission replaces the old rating")
	assert.Equal(t, 1, tutor.RatingCount)
}

func TestSubmitReviewRequiresCompletedSession(t *testing.T) {
	f := newFixture()
	f.addSession(models.SessionConfirmed)

	_, err := f.svc.SubmitReview(f.studentUserID, ReviewInput{TutorID: f.tutorID.Hex(), Rating: 4})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	f := newFixture()
	f.addSession(models.SessionCompleted)

	for _, rating := range []int{0, -1, 6} {
		_, err := f.svc.SubmitReview(f.studentUserID, ReviewInput{TutorID: f.tutorID.Hex(), Rating: rating})
		require.Error(t, err, "rating %d", rating)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestSubmitReviewUnknownTutor(t *testing.T) {
	f := newFixture()
	f.addSession(models.SessionCompleted)

	_, err := f.svc.SubmitReview(f.studentUserID, ReviewInput{
		TutorID: primitive.NewObjectID().Hex(),
		Rating:  4,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
