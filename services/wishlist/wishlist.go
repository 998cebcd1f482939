package wishlist

import (
	"strings"

	studentRepo "educonnect/database/repository/student"
	tutorRepo "educonnect/database/repository/tutor"
	wishlistRepo "educonnect/database/repository/wishlist"
	"educonnect/models"
	"educonnect/services/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistService defines saved-tutor list business logic.
type WishlistService interface {
	// GetWishlist returns the student's saved tutors with profiles
	// resolved. Deleted tutors drop out of the listing.
	GetWishlist(studentUserID primitive.ObjectID) ([]models.TutorProfile, error)
	// AddTutor saves a tutor onto the student's wishlist (idempotent).
	AddTutor(studentUserID primitive.ObjectID, tutorID string) error
	// RemoveTutor takes a tutor off the student's wishlist.
	RemoveTutor(studentUserID primitive.ObjectID, tutorID string) error
}

// DefaultWishlistService is the production implementation.
type DefaultWishlistService struct {
	Repo     wishlistRepo.WishlistRepository
	Students studentRepo.StudentRepository
	Tutors   tutorRepo.TutorRepository
}

func (s *DefaultWishlistService) studentProfile(userID primitive.ObjectID) (*models.StudentProfile, error) {
	student, err := s.Students.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NotFound("student profile not found")
	}
	return student, nil
}

func parseTutorID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, apperrors.Validation("invalid tutor id %q", raw)
	}
	return id, nil
}

// GetWishlist returns the student's saved tutors with profiles resolved.
func (s *DefaultWishlistService) GetWishlist(studentUserID primitive.ObjectID) ([]models.TutorProfile, error) {
	student, err := s.studentProfile(studentUserID)
	if err != nil {
		return nil, err
	}
	list, err := s.Repo.Get(student.ID)
	if err != nil {
		return nil, err
	}

	profiles := make([]models.TutorProfile, 0, len(list.TutorIDs))
	for _, tid := range list.TutorIDs {
		tutor, err := s.Tutors.GetByID(tid)
		if err != nil {
			return nil, err
		}
		if tutor != nil {
			profiles = append(profiles, *tutor)
		}
	}
	return profiles, nil
}

// AddTutor saves a tutor onto the student's wishlist.
func (s *DefaultWishlistService) AddTutor(studentUserID primitive.ObjectID, tutorID string) error {
	student, err := s.studentProfile(studentUserID)
	if err != nil {
		return err
	}
	tid, err := parseTutorID(tutorID)
	if err != nil {
		return err
	}
	tutor, err := s.Tutors.GetByID(tid)
	if err != nil {
		return err
	}
	if tutor == nil {
		return apperrors.NotFound("tutor not found")
	}
	return s.Repo.Add(student.ID, tid)
}

// RemoveTutor takes a tutor off the student's wishlist.
func (s *DefaultWishlistService) RemoveTutor(studentUserID primitive.ObjectID, tutorID string) error {
	student, err := s.studentProfile(studentUserID)
	if err != nil {
		return err
	}
	tid, err := parseTutorID(tutorID)
	if err != nil {
		return err
	}
	return s.Repo.Remove(student.ID, tid)
}
