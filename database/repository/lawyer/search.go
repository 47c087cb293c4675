package lawyerRepo

import (
	"fmt"
	"time"

	"vakeel/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildSearchFilter translates criteria into a membership query: the city
// must be an element of the profile's city set, and the expertise — when
// given — an element of the area_of_expertise set. No fuzzy matching.
func buildSearchFilter(criteria SearchCriteria) bson.M {
	filter := bson.M{
		"city": bson.M{"$in": []string{criteria.City}},
	}
	if criteria.Expertise != "" {
		filter["area_of_expertise"] = bson.M{"$in": []string{criteria.Expertise}}
	}
	return filter
}

// searchSort puts premium profiles ahead of non-premium. No secondary
// tie-break is defined.
var searchSort = bson.D{{Key: "is_premium", Value: -1}}

// Search returns lawyers matching the criteria, premium profiles first, with
// the password hash projected out. An empty result is a valid outcome, not an
// error.
func (r *MongoLawyerRepo) Search(criteria SearchCriteria) ([]models.Lawyer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(PublicProjection).
		SetSort(searchSort)

	cursor, err := r.coll.Find(ctx, buildSearchFilter(criteria), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search lawyers: %w", err)
	}
	defer cursor.Close(ctx)

	var lawyers []models.Lawyer
	for cursor.Next(ctx) {
		var l models.Lawyer
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode lawyer: %w", err)
		}
		lawyers = append(lawyers, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lawyers: %w", err)
	}
	return lawyers, nil
}
