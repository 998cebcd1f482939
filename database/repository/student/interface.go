package studentRepo

import (
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentRepository defines methods for student profile data access.
type StudentRepository interface {
	GetByID(id primitive.ObjectID) (*models.StudentProfile, error)
	GetByUserID(userID primitive.ObjectID) (*models.StudentProfile, error)
	Update(profile *models.StudentProfile) error
	DeleteByUserID(userID primitive.ObjectID) error
}
