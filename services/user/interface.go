package user

import (
	studentRepo "educonnect/database/repository/student"
	tutorRepo "educonnect/database/repository/tutor"
	userRepo "educonnect/database/repository/user"
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterInput carries everything needed to create an account plus its
// role profile.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string

	// Tutor profile fields.
	Bio        string
	Subjects   []string
	HourlyRate float64

	// Student profile fields.
	GradeLevel string
}

// ProfileUpdate carries the mutable account fields.
type ProfileUpdate struct {
	Name     *string
	FCMToken *string
}

// UserService defines business logic for account operations.
type UserService interface {
	// Register validates the registration details and creates the user
	// plus its role profile transactionally.
	Register(input RegisterInput) (*models.AuthResponse, error)
	// Authenticate verifies credentials and returns a signed token.
	Authenticate(email, password string) (*models.AuthResponse, error)
	// RevokeAuthToken bumps the user's tokenVersion so previously
	// issued tokens stop validating.
	RevokeAuthToken(userID primitive.ObjectID) error
	// GetUserByID retrieves a user by its unique ID.
	GetUserByID(userID primitive.ObjectID) (*models.User, error)
	// UpdateProfile updates the account fields.
	UpdateProfile(userID primitive.ObjectID, update ProfileUpdate) (*models.User, error)
	// UpdatePassword verifies the current password and replaces it.
	UpdatePassword(userID primitive.ObjectID, currentPassword, newPassword string) error
	// DeleteAccount removes the user and, best-effort, its profile.
	DeleteAccount(userID primitive.ObjectID) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo        userRepo.UserRepository
	TutorRepo   tutorRepo.TutorRepository
	StudentRepo studentRepo.StudentRepository
}
