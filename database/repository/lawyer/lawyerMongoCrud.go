// File: database/repository/lawyer/lawyerMongoCrud.go
package lawyerRepo

import (
	"fmt"
	"time"

	"vakeel/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new lawyer document.
func (r *MongoLawyerRepo) Create(lawyer *models.Lawyer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	lawyer.CreatedAt = now
	lawyer.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, lawyer)
	if err != nil {
		return fmt.Errorf("failed to create lawyer: %w", err)
	}
	return nil
}

// UpdateFields applies a $set document to the lawyer with the given enrollment id.
func (r *MongoLawyerRepo) UpdateFields(enrollmentID string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"enrollment_id": enrollmentID}
	update := bson.M{"$set": fields}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update lawyer %s: %w", enrollmentID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateLastLogin stamps the last_login field. Best-effort; login proceeds
// even if the stamp fails.
func (r *MongoLawyerRepo) UpdateLastLogin(id string, at time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"last_login": at}}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to stamp last_login for lawyer %s: %w", id, err)
	}
	return nil
}

// ExpireLapsedPremiums clears is_premium on every profile whose
// premium_expires_at has passed. Returns the number of profiles demoted.
func (r *MongoLawyerRepo) ExpireLapsedPremiums(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"is_premium":         true,
		"premium_expires_at": bson.M{"$gt": time.Time{}, "$lte": now},
	}
	update := bson.M{"$set": bson.M{"is_premium": false, "updated_at": now}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire lapsed premiums: %w", err)
	}
	return result.ModifiedCount, nil
}
