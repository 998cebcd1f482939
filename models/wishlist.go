package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wishlist is a student's saved tutors, one document per student.
type Wishlist struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID   `bson:"studentId" json:"studentId"`
	TutorIDs  []primitive.ObjectID `bson:"tutorIds" json:"tutorIds"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}
