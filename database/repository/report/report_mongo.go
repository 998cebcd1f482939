package reportRepo

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

// MongoReportRepo implements ReportRepository using MongoDB.
type MongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo creates a new instance of ReportRepository using MongoDB.
func NewMongoReportRepo() ReportRepository {
	coll := database.DB().Collection("reports")
	repo := &MongoReportRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReportRepo) Create(report *models.Report) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now
	report.Status = models.ReportOpen

	res, err := r.coll.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if report.ID.IsZero() {
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			report.ID = oid
		}
	}
	return nil
}

func (r *MongoReportRepo) GetByID(id primitive.ObjectID) (*models.Report, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var report models.Report
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch report %s: %w", id.Hex(), err)
	}
	return &report, nil
}

func (r *MongoReportRepo) ListByStatus(status string) ([]models.Report, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	for cursor.Next(ctx) {
		var rep models.Report
		if err := cursor.Decode(&rep); err != nil {
			return nil, fmt.Errorf("failed to decode report: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

func (r *MongoReportRepo) Resolve(id primitive.ObjectID, resolution string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.ReportOpen},
		bson.M{"$set": bson.M{
			"status":     models.ReportResolved,
			"resolution": resolution,
			"updatedAt":  time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to resolve report %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("open report %s not found", id.Hex())
	}
	return nil
}
