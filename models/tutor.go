package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TutorProfile holds the tutor-side account data. Sessions, reviews and
// wishlists reference the profile ID, not the user ID.
type TutorProfile struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	Bio      string             `bson:"bio" json:"bio"`
	Subjects []string           `bson:"subjects" json:"subjects"`
	// HourlyRate is snapshotted onto a session at booking time; later
	// rate changes do not touch already-booked sessions.
	HourlyRate float64 `bson:"hourlyRate" json:"hourlyRate"`
	// Earnings accumulates exactly once per completed session.
	Earnings      float64   `bson:"earnings" json:"earnings"`
	AverageRating float64   `bson:"averageRating" json:"averageRating"`
	RatingCount   int       `bson:"ratingCount" json:"ratingCount"`
	Verified      bool      `bson:"verified" json:"verified"`
	Availability  string    `bson:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TutorSearchFilter narrows tutor listings.
type TutorSearchFilter struct {
	Subject      string
	VerifiedOnly bool
	MinRate      float64
	MaxRate      float64
	Limit        int64
}

// EarningsSummary is the tutor-facing earnings report.
type EarningsSummary struct {
	TotalEarnings     float64 `json:"totalEarnings"`
	CompletedSessions int     `json:"completedSessions"`
	PendingSessions   int     `json:"pendingSessions"`
	ConfirmedSessions int     `json:"confirmedSessions"`
}
