package review

import (
	"strings"
	"time"

	reviewRepo "educonnect/database/repository/review"
	sessionRepo "educonnect/database/repository/session"
	studentRepo "educonnect/database/repository/student"
	tutorRepo "educonnect/database/repository/tutor"
	"educonnect/models"
	"educonnect/services/apperrors"
	"educonnect/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ReviewInput carries a student's rating of a tutor.
type ReviewInput struct {
	TutorID string
	Rating  int
	Comment string
}

// ReviewService defines review business logic.
type ReviewService interface {
	// SubmitReview records (or replaces) the student's rating of a tutor
	// and refreshes the tutor's rating aggregate.
	SubmitReview(studentUserID primitive.ObjectID, input ReviewInput) (*models.Review, error)
	// ListTutorReviews lists a tutor's reviews, newest first.
	ListTutorReviews(tutorID primitive.ObjectID) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Tutors   tutorRepo.TutorRepository
	Students studentRepo.StudentRepository
	Sessions sessionRepo.SessionRepository
}

// SubmitReview records the student's rating. A student may only review
// a tutor after a completed session together; re-submitting replaces
// the earlier rating rather than stacking a second one.
func (s *DefaultReviewService) SubmitReview(studentUserID primitive.ObjectID, input ReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}

	tutorID, err := primitive.ObjectIDFromHex(strings.TrimSpace(input.TutorID))
	if err != nil {
		return nil, apperrors.Validation("invalid tutor id %q", input.TutorID)
	}
	tutor, err := s.Tutors.GetByID(tutorID)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, apperrors.NotFound("tutor not found")
	}

	student, err := s.Students.GetByUserID(studentUserID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NotFound("student profile not found")
	}

	completedWith, reviewedSession, err := s.completedSessionWith(student.ID, tutorID)
	if err != nil {
		return nil, err
	}
	if !completedWith {
		return nil, apperrors.Forbidden("you can only review tutors after a completed session")
	}

	now := time.Now().UTC()
	rev := &models.Review{
		StudentID: student.ID,
		TutorID:   tutorID,
		SessionID: reviewedSession,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Upsert(rev); err != nil {
		return nil, err
	}

	average, count, err := s.Repo.AggregateForTutor(tutorID)
	if err != nil {
		utils.GetLogger().Error("SubmitReview: rating aggregation failed",
			zap.String("tutorID", tutorID.Hex()), zap.Error(err))
		return nil, err
	}
	if err := s.Tutors.SetRating(tutorID, average, count); err != nil {
		return nil, err
	}
	return rev, nil
}

// ListTutorReviews lists a tutor's reviews, newest first.
func (s *DefaultReviewService) ListTutorReviews(tutorID primitive.ObjectID) ([]models.Review, error) {
	tutor, err := s.Tutors.GetByID(tutorID)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, apperrors.NotFound("tutor not found")
	}
	return s.Repo.ListByTutor(tutorID)
}

// completedSessionWith reports whether the student has a completed
// session with the tutor, returning one such session's ID.
func (s *DefaultReviewService) completedSessionWith(studentID, tutorID primitive.ObjectID) (bool, primitive.ObjectID, error) {
	sessions, err := s.Sessions.ListByStudent(studentID)
	if err != nil {
		return false, primitive.NilObjectID, err
	}
	for _, sess := range sessions {
		if sess.TutorID == tutorID && sess.Status == models.SessionCompleted {
			return true, sess.ID, nil
		}
	}
	return false, primitive.NilObjectID, nil
}
