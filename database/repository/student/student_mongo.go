package studentRepo

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

// MongoStudentRepo implements StudentRepository using MongoDB.
type MongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo creates a new instance of StudentRepository using MongoDB.
func NewMongoStudentRepo() StudentRepository {
	coll := database.DB().Collection("students")
	repo := &MongoStudentRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
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

func (r *MongoStudentRepo) GetByID(id primitive.ObjectID) (*models.StudentProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.StudentProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student with id %s: %w", id.Hex(), err)
	}
	return &profile, nil
}

func (r *MongoStudentRepo) GetByUserID(userID primitive.ObjectID) (*models.StudentProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.StudentProfile
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student for user %s: %w", userID.Hex(), err)
	}
	return &profile, nil
}

func (r *MongoStudentRepo) Update(profile *models.StudentProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": profile.ID}, bson.M{"$set": profile})
	if err != nil {
		return fmt.Errorf("failed to update student with id %s: %w", profile.ID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("student with id %s not found", profile.ID.Hex())
	}
	return nil
}

func (r *MongoStudentRepo) DeleteByUserID(userID primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("failed to delete student profile for user %s: %w", userID.Hex(), err)
	}
	return nil
}
