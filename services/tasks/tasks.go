package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"educonnect/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TypeSessionReminder is the asynq task type for session reminders.
const TypeSessionReminder = "session:reminder"

// reminderLead is how long before the session start the reminder fires.
const reminderLead = time.Hour

// Scheduler enqueues delayed reminder tasks onto Redis.
type Scheduler struct {
	Client *asynq.Client
}

// NewScheduler creates a Scheduler over an asynq client.
func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{Client: client}
}

// ScheduleReminder queues a reminder for the session's student, due one
// hour before the session starts. Sessions starting sooner than that
// get no reminder.
func (s *Scheduler) ScheduleReminder(session *models.Session, recipientUserID primitive.ObjectID, tutorName string) error {
	fireAt := session.StartTime.Add(-reminderLead)
	if !fireAt.After(time.Now().UTC()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		SessionID: session.ID.Hex(),
		UserID:    recipientUserID.Hex(),
		TutorName: tutorName,
		StartsAt:  session.StartTime.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeSessionReminder, payload)
	if _, err := s.Client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
