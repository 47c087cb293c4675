// File: database/repository/lawyer/lawyerMongoQueries.go
package lawyerRepo

import (
	"fmt"
	"time"

	"vakeel/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a lawyer by its surrogate ID with an optional projection.
// Returns (nil, nil) when no document matches.
func (r *MongoLawyerRepo) GetByID(id string, projection bson.M) (*models.Lawyer, error) {
	return r.findOne(bson.M{"id": id}, projection)
}

// GetByEnrollmentID retrieves a lawyer by enrollment id with an optional projection.
// Returns (nil, nil) when no document matches.
func (r *MongoLawyerRepo) GetByEnrollmentID(enrollmentID string, projection bson.M) (*models.Lawyer, error) {
	return r.findOne(bson.M{"enrollment_id": enrollmentID}, projection)
}

// GetByLogin retrieves the full record by enrollment id or email, hash included.
// Used only for credential verification; callers must not serialize the result.
func (r *MongoLawyerRepo) GetByLogin(identifier string) (*models.Lawyer, error) {
	filter := bson.M{"$or": []bson.M{
		{"enrollment_id": identifier},
		{"email": identifier},
	}}
	return r.findOne(filter, nil)
}

func (r *MongoLawyerRepo) findOne(filter bson.M, projection bson.M) (*models.Lawyer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var lawyer models.Lawyer
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&lawyer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lawyer: %w", err)
	}
	return &lawyer, nil
}

// FindConflict runs the three uniqueness probes independently so callers can
// report the exact invariant a registration would violate. Email is skipped
// when empty (the field is optional).
func (r *MongoLawyerRepo) FindConflict(enrollmentID, email, mobileNumber string) (string, error) {
	probes := []struct {
		field string
		value string
	}{
		{"enrollment_id", enrollmentID},
		{"email", email},
		{"mobile_Number", mobileNumber},
	}

	for _, p := range probes {
		if p.value == "" {
			continue
		}
		taken, err := r.exists(bson.M{p.field: p.value})
		if err != nil {
			return "", err
		}
		if taken {
			return p.field, nil
		}
	}
	return "", nil
}

func (r *MongoLawyerRepo) exists(filter bson.M) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	err := r.coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("uniqueness probe failed: %w", err)
	}
	return true, nil
}
