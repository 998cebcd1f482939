package sessionRepo

import (
	"errors"
	"time"

	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrSlotTaken is returned when a write would violate the per-tutor
// no-overlap invariant.
var ErrSlotTaken = errors.New("tutor already has a session in this time slot")

// SessionRepository defines methods for session data access.
type SessionRepository interface {
	// GetByID retrieves a session by its ID, nil when absent.
	GetByID(id primitive.ObjectID) (*models.Session, error)
	// ListByStudent lists a student's sessions, newest first.
	ListByStudent(studentID primitive.ObjectID) ([]models.Session, error)
	// ListByTutor lists a tutor's sessions, newest first.
	ListByTutor(tutorID primitive.ObjectID) ([]models.Session, error)
	// ListActiveByTutorWindow lists the tutor's non-canceled sessions
	// whose [start,end) intersects [from,to).
	ListActiveByTutorWindow(tutorID primitive.ObjectID, from, to time.Time) ([]models.Session, error)
	// InsertIfAvailable inserts the session unless an overlapping
	// non-canceled session exists; the check and insert run in one
	// transaction. Returns ErrSlotTaken on conflict.
	InsertIfAvailable(session *models.Session) error
	// UpdateIfAvailable rewrites the session's fields unless its new
	// time range overlaps another non-canceled session of the tutor.
	// Returns ErrSlotTaken on conflict.
	UpdateIfAvailable(session *models.Session) error
	// UpdateStatusFrom transitions the status only when the current
	// status equals from; reports whether the transition happened.
	UpdateStatusFrom(id primitive.ObjectID, from, to string) (bool, error)
	// SetPaymentStatus updates the bookkeeping payment flag.
	SetPaymentStatus(id primitive.ObjectID, status string) error
	// CountByTutorAndStatus counts a tutor's sessions in a status.
	CountByTutorAndStatus(tutorID primitive.ObjectID, status string) (int64, error)
}
