package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an in-app message. Push delivery (FCM) is best-effort
// on top of the stored document.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for session reminders.
type ReminderPayload struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	TutorName string `json:"tutorName"`
	StartsAt  string `json:"startsAt"`
}
