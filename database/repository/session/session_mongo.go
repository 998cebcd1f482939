package sessionRepo

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

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new instance of SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	coll := database.DB().Collection("sessions")
	repo := &MongoSessionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tutorId", Value: 1}, {Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "startTime", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// overlapFilter matches non-canceled sessions of the tutor whose
// [startTime,endTime) intersects [start,end), or that start at exactly
// the same instant.
func overlapFilter(tutorID primitive.ObjectID, start, end time.Time, exclude primitive.ObjectID) bson.M {
	filter := bson.M{
		"tutorId": tutorID,
		"status":  bson.M{"$ne": models.SessionCanceled},
		"$or": []bson.M{
			{"startTime": bson.M{"$lt": end}, "endTime": bson.M{"$gt": start}},
			{"startTime": start},
		},
	}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	return filter
}

// GetByID retrieves a session by its ID.
func (r *MongoSessionRepo) GetByID(id primitive.ObjectID) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.Session
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session with id %s: %w", id.Hex(), err)
	}
	return &session, nil
}

func (r *MongoSessionRepo) list(filter bson.M) ([]models.Session, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	for cursor.Next(ctx) {
		var s models.Session
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// ListByStudent lists a student's sessions, newest first.
func (r *MongoSessionRepo) ListByStudent(studentID primitive.ObjectID) ([]models.Session, error) {
	return r.list(bson.M{"studentId": studentID})
}

// ListByTutor lists a tutor's sessions, newest first.
func (r *MongoSessionRepo) ListByTutor(tutorID primitive.ObjectID) ([]models.Session, error) {
	return r.list(bson.M{"tutorId": tutorID})
}

// ListActiveByTutorWindow lists the tutor's non-canceled sessions whose
// [start,end) intersects [from,to).
func (r *MongoSessionRepo) ListActiveByTutorWindow(tutorID primitive.ObjectID, from, to time.Time) ([]models.Session, error) {
	return r.list(bson.M{
		"tutorId":   tutorID,
		"status":    bson.M{"$ne": models.SessionCanceled},
		"startTime": bson.M{"$lt": to},
		"endTime":   bson.M{"$gt": from},
	})
}

// InsertIfAvailable re-runs the overlap check and inserts the session in
// one transaction, closing the race between a client's availability
// pre-check and its booking request.
func (r *MongoSessionRepo) InsertIfAvailable(session *models.Session) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.ID.IsZero() {
		session.ID = primitive.NewObjectID()
	}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc,
			overlapFilter(session.TutorID, session.StartTime, session.EndTime, primitive.NilObjectID))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}
		if _, err := r.coll.InsertOne(sc, session); err != nil {
			return fmt.Errorf("insert session failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// UpdateIfAvailable rewrites the session unless its new time range
// overlaps another non-canceled session of the tutor.
func (r *MongoSessionRepo) UpdateIfAvailable(session *models.Session) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	session.UpdatedAt = time.Now()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc,
			overlapFilter(session.TutorID, session.StartTime, session.EndTime, session.ID))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}
		res, err := r.coll.UpdateOne(sc, bson.M{"_id": session.ID}, bson.M{"$set": session})
		if err != nil {
			return fmt.Errorf("update session failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("session with id %s not found", session.ID.Hex())
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("session update transaction failed: %w", err)
	}

	return nil
}

// UpdateStatusFrom transitions the status only when the current status
// equals from. The guard makes completed/canceled terminal at the store
// level and keeps the earnings increment exactly-once.
func (r *MongoSessionRepo) UpdateStatusFrom(id primitive.ObjectID, from, to string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to transition session %s from %s to %s: %w", id.Hex(), from, to, err)
	}
	return result.MatchedCount > 0, nil
}

// SetPaymentStatus updates the bookkeeping payment flag.
func (r *MongoSessionRepo) SetPaymentStatus(id primitive.ObjectID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"paymentStatus": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set payment status for session %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("session with id %s not found", id.Hex())
	}
	return nil
}

// CountByTutorAndStatus counts a tutor's sessions in a status.
func (r *MongoSessionRepo) CountByTutorAndStatus(tutorID primitive.ObjectID, status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"tutorId": tutorID, "status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions for tutor %s: %w", tutorID.Hex(), err)
	}
	return count, nil
}
