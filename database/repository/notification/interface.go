package notificationRepo

import (
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	// ListByUser lists a user's notifications, newest first.
	ListByUser(userID primitive.ObjectID) ([]models.Notification, error)
	// MarkRead flags a notification as read; ownership is part of the
	// filter so users cannot touch each other's notifications.
	MarkRead(id, userID primitive.ObjectID) error
}
