package notification

import (
	"context"
	"time"

	notificationRepo "educonnect/database/repository/notification"
	userRepo "educonnect/database/repository/user"
	"educonnect/models"
	"educonnect/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const pushTimeout = 5 * time.Second

// NotificationService stores in-app notifications and pushes them over
// FCM when the recipient has a registered device token.
type NotificationService interface {
	// Notify stores a notification and attempts push delivery. Both
	// halves are best-effort; failures are logged, never propagated.
	Notify(userID primitive.ObjectID, title, body string)
	// ListForUser lists the user's notifications, newest first.
	ListForUser(userID primitive.ObjectID) ([]models.Notification, error)
	// MarkRead flags one of the user's notifications as read.
	MarkRead(id, userID primitive.ObjectID) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
	// Push is optional; nil disables FCM delivery.
	Push *messaging.Client
}

// Notify stores the notification and pushes it if possible.
func (s *DefaultNotificationService) Notify(userID primitive.ObjectID, title, body string) {
	rec := &models.Notification{
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(rec); err != nil {
		utils.GetLogger().Error("Notify: failed to store notification",
			zap.String("userID", userID.Hex()), zap.Error(err))
		return
	}
	s.push(userID, title, body)
}

func (s *DefaultNotificationService) push(userID primitive.ObjectID, title, body string) {
	if s.Push == nil {
		return
	}
	userRec, err := s.Users.GetByID(userID)
	if err != nil || userRec == nil || userRec.FCMToken == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	msg := &messaging.Message{
		Token: userRec.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := s.Push.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("Notify: push delivery failed",
			zap.String("userID", userID.Hex()), zap.Error(err))
	}
}

// ListForUser lists the user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(userID primitive.ObjectID) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID)
}

// MarkRead flags one of the user's notifications as read.
func (s *DefaultNotificationService) MarkRead(id, userID primitive.ObjectID) error {
	return s.Repo.MarkRead(id, userID)
}
