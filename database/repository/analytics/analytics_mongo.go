package analyticsRepo

import (
	"context"
	"fmt"
	"time"

	"educonnect/database"
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAnalyticsRepo implements AnalyticsRepository over several collections.
type MongoAnalyticsRepo struct {
	db *mongo.Database
}

// NewMongoAnalyticsRepo creates a new instance of AnalyticsRepository using MongoDB.
func NewMongoAnalyticsRepo() AnalyticsRepository {
	return &MongoAnalyticsRepo{db: database.DB()}
}

type groupCount struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

func countByField(ctx context.Context, coll *mongo.Collection, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s counts: %w", field, err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var gc groupCount
		if err := cursor.Decode(&gc); err != nil {
			return nil, fmt.Errorf("failed to decode %s count: %w", field, err)
		}
		counts[gc.ID] = gc.Count
	}
	return counts, nil
}

// Overview computes the admin dashboard aggregates.
func (r *MongoAnalyticsRepo) Overview() (*models.AnalyticsOverview, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	usersByRole, err := countByField(ctx, r.db.Collection("users"), "role")
	if err != nil {
		return nil, err
	}
	sessionsByStatus, err := countByField(ctx, r.db.Collection("sessions"), "status")
	if err != nil {
		return nil, err
	}

	// Revenue over completed sessions.
	revenuePipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": models.SessionCompleted}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	cursor, err := r.db.Collection("sessions").Aggregate(ctx, revenuePipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	var revenue struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&revenue); err != nil {
			cursor.Close(ctx)
			return nil, fmt.Errorf("failed to decode revenue aggregate: %w", err)
		}
	}
	cursor.Close(ctx)

	openReports, err := r.db.Collection("reports").CountDocuments(ctx, bson.M{"status": models.ReportOpen})
	if err != nil {
		return nil, fmt.Errorf("failed to count open reports: %w", err)
	}
	pendingVerifies, err := r.db.Collection("verification_requests").
		CountDocuments(ctx, bson.M{"status": models.VerificationPending})
	if err != nil {
		return nil, fmt.Errorf("failed to count pending verifications: %w", err)
	}

	// Top tutors by rating, rated ones only.
	opts := options.Find().
		SetSort(bson.D{{Key: "averageRating", Value: -1}, {Key: "ratingCount", Value: -1}}).
		SetLimit(5)
	tutorCursor, err := r.db.Collection("tutors").Find(ctx, bson.M{"ratingCount": bson.M{"$gt": 0}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list top tutors: %w", err)
	}
	defer tutorCursor.Close(ctx)

	var topTutors []models.TutorProfile
	for tutorCursor.Next(ctx) {
		var t models.TutorProfile
		if err := tutorCursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode tutor: %w", err)
		}
		topTutors = append(topTutors, t)
	}

	return &models.AnalyticsOverview{
		UsersByRole:       usersByRole,
		SessionsByStatus:  sessionsByStatus,
		CompletedRevenue:  revenue.Total,
		OpenReports:       openReports,
		PendingVerifies:   pendingVerifies,
		TopTutorsByRating: topTutors,
	}, nil
}
