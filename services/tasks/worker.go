package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sessionRepo "educonnect/database/repository/session"
	"educonnect/models"
	"educonnect/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Notifier matches the notification service's delivery entry point.
type Notifier interface {
	Notify(userID primitive.ObjectID, title, body string)
}

// Worker consumes scheduled tasks from Redis.
type Worker struct {
	server   *asynq.Server
	sessions sessionRepo.SessionRepository
	notifier Notifier
}

// NewWorker builds a Worker over the given Redis connection.
func NewWorker(redisOpt asynq.RedisClientOpt, sessions sessionRepo.SessionRepository, notifier Notifier) *Worker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
	})
	return &Worker{server: server, sessions: sessions, notifier: notifier}
}

// Start runs the task loop in the background.
func (w *Worker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionReminder, w.handleSessionReminder)
	return w.server.Start(mux)
}

// Shutdown drains in-flight tasks and stops the loop.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

// handleSessionReminder delivers a queued reminder. A session canceled
// after scheduling simply drops its reminder.
func (w *Worker) handleSessionReminder(ctx context.Context, t *asynq.Task) error {
	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal reminder payload: %w", err)
	}

	sessionID, err := primitive.ObjectIDFromHex(payload.SessionID)
	if err != nil {
		return fmt.Errorf("invalid session id in reminder payload: %w", err)
	}
	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id in reminder payload: %w", err)
	}

	session, err := w.sessions.GetByID(sessionID)
	if err != nil {
		return err
	}
	if session == nil || session.Status != models.SessionConfirmed {
		return nil
	}

	startsAt := session.StartTime.Format(time.Kitchen)
	w.notifier.Notify(userID, "Upcoming session",
		fmt.Sprintf("Your session with %s starts at %s.", payload.TutorName, startsAt))

	utils.GetLogger().Info("session reminder delivered",
		zap.String("sessionID", payload.SessionID), zap.String("userID", payload.UserID))
	return nil
}
