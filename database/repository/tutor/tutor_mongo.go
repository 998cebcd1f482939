package tutorRepo

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

// MongoTutorRepo implements TutorRepository using MongoDB.
type MongoTutorRepo struct {
	coll *mongo.Collection
}

// NewMongoTutorRepo creates a new instance of TutorRepository using MongoDB.
func NewMongoTutorRepo() TutorRepository {
	coll := database.DB().Collection("tutors")
	repo := &MongoTutorRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTutorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "subjects", Value: 1}}},
		{Keys: bson.D{{Key: "hourlyRate", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a tutor profile by its ID.
func (r *MongoTutorRepo) GetByID(id primitive.ObjectID) (*models.TutorProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.TutorProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tutor with id %s: %w", id.Hex(), err)
	}
	return &profile, nil
}

// GetByUserID retrieves the profile owned by the given user account.
func (r *MongoTutorRepo) GetByUserID(userID primitive.ObjectID) (*models.TutorProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.TutorProfile
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tutor for user %s: %w", userID.Hex(), err)
	}
	return &profile, nil
}

// Update modifies an existing profile.
func (r *MongoTutorRepo) Update(profile *models.TutorProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": profile.ID}, bson.M{"$set": profile})
	if err != nil {
		return fmt.Errorf("failed to update tutor with id %s: %w", profile.ID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tutor with id %s not found", profile.ID.Hex())
	}
	return nil
}

// Search lists tutors matching the filter, sorted by rating.
func (r *MongoTutorRepo) Search(filter models.TutorSearchFilter) ([]models.TutorProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Subject != "" {
		query["subjects"] = filter.Subject
	}
	if filter.VerifiedOnly {
		query["verified"] = true
	}
	rateRange := bson.M{}
	if filter.MinRate > 0 {
		rateRange["$gte"] = filter.MinRate
	}
	if filter.MaxRate > 0 {
		rateRange["$lte"] = filter.MaxRate
	}
	if len(rateRange) > 0 {
		query["hourlyRate"] = rateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "averageRating", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search tutors: %w", err)
	}
	defer cursor.Close(ctx)

	var tutors []models.TutorProfile
	for cursor.Next(ctx) {
		var t models.TutorProfile
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode tutor: %w", err)
		}
		tutors = append(tutors, t)
	}
	return tutors, nil
}

// IncrementEarnings adds amount to the cumulative earnings counter.
func (r *MongoTutorRepo) IncrementEarnings(id primitive.ObjectID, amount float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"earnings": amount}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to increment earnings for tutor %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tutor with id %s not found", id.Hex())
	}
	return nil
}

// SetRating stores the recomputed review aggregate.
func (r *MongoTutorRepo) SetRating(id primitive.ObjectID, average float64, count int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"averageRating": average, "ratingCount": count, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set rating for tutor %s: %w", id.Hex(), err)
	}
	return nil
}

// SetVerified flips the verification flag.
func (r *MongoTutorRepo) SetVerified(id primitive.ObjectID, verified bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"verified": verified, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set verified flag for tutor %s: %w", id.Hex(), err)
	}
	return nil
}

// DeleteByUserID removes the profile for a deleted account.
func (r *MongoTutorRepo) DeleteByUserID(userID primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("failed to delete tutor profile for user %s: %w", userID.Hex(), err)
	}
	return nil
}
