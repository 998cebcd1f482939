package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Verification request statuses.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// VerificationRequest is a tutor's identity/qualification check. The
// document is uploaded to Cloudinary; admins approve or reject.
type VerificationRequest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TutorID      primitive.ObjectID `bson:"tutorId" json:"tutorId"`
	DocumentURL  string             `bson:"documentUrl" json:"documentUrl"`
	Status       string             `bson:"status" json:"status"`
	ReviewerNote string             `bson:"reviewerNote,omitempty" json:"reviewerNote,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
