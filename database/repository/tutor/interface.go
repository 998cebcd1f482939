package tutorRepo

import (
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TutorRepository defines methods for tutor profile data access.
type TutorRepository interface {
	// GetByID retrieves a tutor profile by its ID, nil when absent.
	GetByID(id primitive.ObjectID) (*models.TutorProfile, error)
	// GetByUserID retrieves the profile owned by the given user account.
	GetByUserID(userID primitive.ObjectID) (*models.TutorProfile, error)
	// Update modifies an existing profile.
	Update(profile *models.TutorProfile) error
	// Search lists tutors matching the filter.
	Search(filter models.TutorSearchFilter) ([]models.TutorProfile, error)
	// IncrementEarnings adds amount to the cumulative earnings counter.
	IncrementEarnings(id primitive.ObjectID, amount float64) error
	// SetRating stores the recomputed review aggregate.
	SetRating(id primitive.ObjectID, average float64, count int) error
	// SetVerified flips the verification flag.
	SetVerified(id primitive.ObjectID, verified bool) error
	// DeleteByUserID removes the profile for a deleted account.
	DeleteByUserID(userID primitive.ObjectID) error
}
