package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report statuses.
const (
	ReportOpen     = "open"
	ReportResolved = "resolved"
)

// Report is a user-filed complaint against another user.
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReporterID primitive.ObjectID `bson:"reporterId" json:"reporterId"`
	TargetID   primitive.ObjectID `bson:"targetId" json:"targetId"`
	Reason     string             `bson:"reason" json:"reason"`
	Status     string             `bson:"status" json:"status"`
	Resolution string             `bson:"resolution,omitempty" json:"resolution,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
