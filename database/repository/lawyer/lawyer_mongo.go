package lawyerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vakeel/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a write targets a lawyer that does not exist.
var ErrNotFound = errors.New("lawyer not found")

// PublicProjection strips credentials from externally visible reads.
var PublicProjection = bson.M{
	"password_hash": 0,
}

// SelfProjection additionally hides internal/administrative fields from the
// owning lawyer's own view.
var SelfProjection = bson.M{
	"password_hash":    0,
	"id":               0,
	"profile_overview": 0,
	"state_id":         0,
	"city_id":          0,
	"created_at":       0,
	"updated_at":       0,
}

// IdentityProjection keeps only the minimal fields the /me endpoint returns.
var IdentityProjection = bson.M{
	"id":            1,
	"enrollment_id": 1,
	"email":         1,
	"first_Name":    1,
	"last_Name":     1,
	"mobile_Number": 1,
}

// MongoLawyerRepo implements LawyerRepository using MongoDB.
type MongoLawyerRepo struct {
	coll *mongo.Collection
}

// NewMongoLawyerRepo creates a new instance of LawyerRepository using MongoDB.
func NewMongoLawyerRepo() LawyerRepository {
	coll := database.GetDatabase().Collection("lawyers")
	repo := &MongoLawyerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
