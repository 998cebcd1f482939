package booking

import (
	sessionRepo "educonnect/database/repository/session"
	studentRepo "educonnect/database/repository/student"
	tutorRepo "educonnect/database/repository/tutor"
	userRepo "educonnect/database/repository/user"
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookSessionInput carries a booking request.
type BookSessionInput struct {
	TutorID string
	Date    string // "2006-01-02"
	Start   string // "15:04"
	End     string // "15:04"
	Type    string
	Subject string
	Notes   string
}

// UpdateSessionInput carries an edit to a pending or confirmed session.
// Nil fields are left unchanged.
type UpdateSessionInput struct {
	Date  *string
	Start *string
	End   *string
	Type  *string
	Notes *string
}

// AvailabilityResult reports the advisory pre-check outcome.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	TutorID   string `json:"tutorId"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
}

// Notifier delivers a message to a user account; implementations are
// best-effort and must not fail the calling operation.
type Notifier interface {
	Notify(userID primitive.ObjectID, title, body string)
}

// ReminderScheduler queues a pre-session reminder for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(session *models.Session, recipientUserID primitive.ObjectID, tutorName string) error
}

// BookingService defines the session booking business logic.
type BookingService interface {
	// CheckAvailability reports whether any non-canceled session of the
	// tutor overlaps the requested slot. Advisory only; the booking
	// path re-checks inside a transaction.
	CheckAvailability(tutorID, date, timeSlot string) (*AvailabilityResult, error)
	// BookSession creates a pending session with the tutor's current
	// hourly rate snapshotted as the amount.
	BookSession(studentUserID primitive.ObjectID, input BookSessionInput) (*models.Session, error)
	// ListSessionsFor lists the caller's sessions by role.
	ListSessionsFor(userID primitive.ObjectID, role string) ([]models.Session, error)
	// GetSessionFor fetches one session, enforcing ownership.
	GetSessionFor(id, userID primitive.ObjectID, role string) (*models.Session, error)
	// UpdateSession edits date/time/type/notes on a pending or
	// confirmed session; time changes re-run the overlap check.
	UpdateSession(id, actorUserID primitive.ObjectID, role string, input UpdateSessionInput) (*models.Session, error)
	// DecideSession lets the owning tutor approve (pending→confirmed)
	// or decline (pending→canceled) a booking request.
	DecideSession(id, tutorUserID primitive.ObjectID, approve bool) (*models.Session, error)
	// CompleteSession transitions confirmed→completed and credits the
	// tutor's earnings exactly once.
	CompleteSession(id, tutorUserID primitive.ObjectID) (*models.Session, error)
	// CancelSession lets either owner cancel a pending or confirmed
	// session.
	CancelSession(id, actorUserID primitive.ObjectID, role string) (*models.Session, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Sessions sessionRepo.SessionRepository
	Tutors   tutorRepo.TutorRepository
	Students studentRepo.StudentRepository
	Users    userRepo.UserRepository
	// Notifier and Reminders are optional; nil disables delivery.
	Notifier  Notifier
	Reminders ReminderScheduler
}
