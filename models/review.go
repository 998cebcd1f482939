package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a student's rating of a tutor. One review per student/tutor
// pair; re-submitting replaces the previous rating.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	TutorID   primitive.ObjectID `bson:"tutorId" json:"tutorId"`
	SessionID primitive.ObjectID `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Rating    int                `bson:"rating" json:"rating"` // 1..5
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
