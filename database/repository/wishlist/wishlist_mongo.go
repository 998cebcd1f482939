package wishlistRepo

import (
	"context"
	"fmt"
	"time"

	"educonnect/database"
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWishlistRepo implements WishlistRepository using MongoDB.
type MongoWishlistRepo struct {
	coll *mongo.Collection
}

// NewMongoWishlistRepo creates a new instance of WishlistRepository using MongoDB.
func NewMongoWishlistRepo() WishlistRepository {
	coll := database.DB().Collection("wishlists")
	repo := &MongoWishlistRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "studentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Get returns the student's wishlist, creating an empty one on first access.
func (r *MongoWishlistRepo) Get(studentID primitive.ObjectID) (*models.Wishlist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var wl models.Wishlist
	err := r.coll.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&wl)
	if err == mongo.ErrNoDocuments {
		return &models.Wishlist{StudentID: studentID, TutorIDs: []primitive.ObjectID{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist for student %s: %w", studentID.Hex(), err)
	}
	return &wl, nil
}

// Add saves a tutor onto the student's wishlist (idempotent).
func (r *MongoWishlistRepo) Add(studentID, tutorID primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"studentId": studentID},
		bson.M{
			"$addToSet": bson.M{"tutorIds": tutorID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to add tutor %s to wishlist: %w", tutorID.Hex(), err)
	}
	return nil
}

// Remove takes a tutor off the student's wishlist.
func (r *MongoWishlistRepo) Remove(studentID, tutorID primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"studentId": studentID},
		bson.M{
			"$pull": bson.M{"tutorIds": tutorID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to remove tutor %s from wishlist: %w", tutorID.Hex(), err)
	}
	return nil
}
