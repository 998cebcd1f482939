package reviewRepo

import (
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Upsert inserts the review or replaces the student's existing
	// review of the tutor.
	Upsert(review *models.Review) error
	// ListByTutor lists a tutor's reviews, newest first.
	ListByTutor(tutorID primitive.ObjectID) ([]models.Review, error)
	// AggregateForTutor recomputes the tutor's average rating and count.
	AggregateForTutor(tutorID primitive.ObjectID) (float64, int, error)
}
