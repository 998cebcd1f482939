package verificationRepo

import (
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VerificationRepository defines methods for verification request data access.
type VerificationRepository interface {
	Create(req *models.VerificationRequest) error
	GetByID(id primitive.ObjectID) (*models.VerificationRequest, error)
	// GetOpenByTutor returns the tutor's pending request, nil when none.
	GetOpenByTutor(tutorID primitive.ObjectID) (*models.VerificationRequest, error)
	// ListByStatus lists requests in the given status, oldest first.
	ListByStatus(status string) ([]models.VerificationRequest, error)
	// UpdateStatus records the admin decision.
	UpdateStatus(id primitive.ObjectID, status, note string) error
}
