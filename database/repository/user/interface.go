package userRepo

import (
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id primitive.ObjectID) (*models.User, error)
	// GetByEmail retrieves a user by its email address, nil when absent.
	GetByEmail(email string) (*models.User, error)
	// CreateWithProfile inserts the user and its role profile in one
	// transaction so a failure cannot leave a half-created account.
	// Exactly one of tutor/student must be non-nil for those roles.
	CreateWithProfile(user *models.User, tutor *models.TutorProfile, student *models.StudentProfile) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id primitive.ObjectID) error
	// IncrementTokenVersion bumps the invalidation counter and returns
	// the new value.
	IncrementTokenVersion(id primitive.ObjectID) (int, error)
	// SetActive flips the moderation flag.
	SetActive(id primitive.ObjectID, active bool) error
	// GetAll retrieves all users, optionally filtered by role.
	GetAll(role string) ([]models.User, error)
}
