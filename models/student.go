package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentProfile holds the student-side account data.
type StudentProfile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	GradeLevel string             `bson:"gradeLevel,omitempty" json:"gradeLevel,omitempty"`
	Subjects   []string           `bson:"subjects,omitempty" json:"subjects,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
