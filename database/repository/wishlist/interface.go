package wishlistRepo

import (
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistRepository defines methods for wishlist data access.
type WishlistRepository interface {
	// Get returns the student's wishlist, creating an empty one on
	// first access.
	Get(studentID primitive.ObjectID) (*models.Wishlist, error)
	// Add saves a tutor onto the student's wishlist (idempotent).
	Add(studentID, tutorID primitive.ObjectID) error
	// Remove takes a tutor off the student's wishlist.
	Remove(studentID, tutorID primitive.ObjectID) error
}
