package userRepo

import (
	"context"
	"fmt"
	"time"

	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateWithProfile inserts the user document and its role-specific
// profile inside a single transaction. Registration must not leave a
// user without a profile (or a profile without a user) behind.
func (r *MongoUserRepo) CreateWithProfile(user *models.User, tutor *models.TutorProfile, student *models.StudentProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	db := r.coll.Database()
	client := db.Client()

	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		res, err := r.coll.InsertOne(sc, user)
		if err != nil {
			return fmt.Errorf("insert user failed: %w", err)
		}
		if user.ID.IsZero() {
			oid, ok := res.InsertedID.(primitive.ObjectID)
			if !ok {
				return fmt.Errorf("inserted user has no object id")
			}
			user.ID = oid
		}

		switch {
		case tutor != nil:
			tutor.UserID = user.ID
			tutor.CreatedAt = now
			tutor.UpdatedAt = now
			if _, err := db.Collection("tutors").InsertOne(sc, tutor); err != nil {
				return fmt.Errorf("insert tutor profile failed: %w", err)
			}
		case student != nil:
			student.UserID = user.ID
			student.CreatedAt = now
			student.UpdatedAt = now
			if _, err := db.Collection("students").InsertOne(sc, student); err != nil {
				return fmt.Errorf("insert student profile failed: %w", err)
			}
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
		return fmt.Errorf("registration transaction failed: %w", err)
	}

	return nil
}
