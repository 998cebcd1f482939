package tutor

import (
	"context"
	"io"

	sessionRepo "educonnect/database/repository/session"
	tutorRepo "educonnect/database/repository/tutor"
	verificationRepo "educonnect/database/repository/verification"
	"educonnect/models"
	"educonnect/services/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileUpdate carries a tutor's edits to their own profile. Nil
// fields are left unchanged.
type ProfileUpdate struct {
	Bio          *string
	Subjects     *[]string
	HourlyRate   *float64
	Availability *string
}

// TutorService defines tutor-facing business logic.
type TutorService interface {
	// GetTutor fetches a tutor's public profile by profile ID.
	GetTutor(id primitive.ObjectID) (*models.TutorProfile, error)
	// GetOwnProfile fetches the profile owned by the calling account.
	GetOwnProfile(userID primitive.ObjectID) (*models.TutorProfile, error)
	// SearchTutors lists tutors matching the filter, best rated first.
	SearchTutors(filter models.TutorSearchFilter) ([]models.TutorProfile, error)
	// UpdateOwnProfile applies the tutor's edits.
	UpdateOwnProfile(userID primitive.ObjectID, update ProfileUpdate) (*models.TutorProfile, error)
	// GetEarnings summarizes the tutor's earnings and session counts.
	GetEarnings(userID primitive.ObjectID) (*models.EarningsSummary, error)
	// SubmitVerification uploads a document and opens a pending request.
	SubmitVerification(ctx context.Context, userID primitive.ObjectID, document io.Reader) (*models.VerificationRequest, error)
}

// DefaultTutorService is the production implementation.
type DefaultTutorService struct {
	Repo          tutorRepo.TutorRepository
	Sessions      sessionRepo.SessionRepository
	Verifications verificationRepo.VerificationRepository
	// Storage is optional; nil disables verification uploads.
	Storage storage.StorageService
}
