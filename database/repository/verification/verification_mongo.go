package verificationRepo

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

// MongoVerificationRepo implements VerificationRepository using MongoDB.
type MongoVerificationRepo struct {
	coll *mongo.Collection
}

// NewMongoVerificationRepo creates a new instance of VerificationRepository using MongoDB.
func NewMongoVerificationRepo() VerificationRepository {
	coll := database.DB().Collection("verification_requests")
	repo := &MongoVerificationRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "tutorId", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVerificationRepo) Create(req *models.VerificationRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	req.Status = models.VerificationPending

	res, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create verification request: %w", err)
	}
	if req.ID.IsZero() {
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			req.ID = oid
		}
	}
	return nil
}

func (r *MongoVerificationRepo) GetByID(id primitive.ObjectID) (*models.VerificationRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.VerificationRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch verification request %s: %w", id.Hex(), err)
	}
	return &req, nil
}

func (r *MongoVerificationRepo) GetOpenByTutor(tutorID primitive.ObjectID) (*models.VerificationRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.VerificationRequest
	err := r.coll.FindOne(ctx, bson.M{"tutorId": tutorID, "status": models.VerificationPending}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open verification request for tutor %s: %w", tutorID.Hex(), err)
	}
	return &req, nil
}

func (r *MongoVerificationRepo) ListByStatus(status string) ([]models.VerificationRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list verification requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.VerificationRequest
	for cursor.Next(ctx) {
		var req models.VerificationRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode verification request: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (r *MongoVerificationRepo) UpdateStatus(id primitive.ObjectID, status, note string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "reviewerNote": note, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update verification request %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("verification request %s not found", id.Hex())
	}
	return nil
}
