package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session lifecycle statuses. Completed and canceled are terminal.
const (
	SessionPending   = "pending"
	SessionConfirmed = "confirmed"
	SessionCompleted = "completed"
	SessionCanceled  = "canceled"
)

// Session types.
const (
	SessionOnline   = "online"
	SessionInPerson = "in-person"
)

// Payment statuses (bookkeeping only; no processor integration).
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Session is a booked tutoring slot. StartTime/EndTime are derived from
// Date and TimeSlot at write time; the per-tutor no-overlap invariant is
// enforced over [StartTime, EndTime) of non-canceled sessions.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	TutorID   primitive.ObjectID `bson:"tutorId" json:"tutorId"`
	Date      string             `bson:"date" json:"date"`         // "2006-01-02"
	TimeSlot  string             `bson:"timeSlot" json:"timeSlot"` // "HH:MM - HH:MM"
	StartTime time.Time          `bson:"startTime" json:"startTime"`
	EndTime   time.Time          `bson:"endTime" json:"endTime"`
	Type      string             `bson:"type" json:"type"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Status    string             `bson:"status" json:"status"`
	// Amount is the tutor's hourly rate at booking time.
	Amount        float64   `bson:"amount" json:"amount"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Terminal reports whether the session can no longer change status.
func (s *Session) Terminal() bool {
	return s.Status == SessionCompleted || s.Status == SessionCanceled
}
