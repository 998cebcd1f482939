package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// User represents a platform account. Role-specific data lives in
// TutorProfile / StudentProfile, related by UserID.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	// TokenVersion is bumped on sign-out; tokens minted with an older
	// version are rejected by the auth middleware.
	TokenVersion int       `bson:"tokenVersion" json:"-"`
	Active       bool      `bson:"active" json:"active"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
