package userRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetFavorites returns the user's favorite provider IDs.
func (r *MongoUserRepo) GetFavorites(userID string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"favorites": 1})
	var doc struct {
		Favorites []string `bson:"favorites"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"id": userID}, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch favorites for user %s: %w", userID, err)
	}
	return doc.Favorites, nil
}

// AddFavorite adds a provider to the user's favorite set. $addToSet keeps the
// operation additive so concurrent toggles from other sessions are not
// overwritten.
func (r *MongoUserRepo) AddFavorite(userID, providerID string) error {
	return r.updateFavorites(userID, "$addToSet", providerID)
}

// RemoveFavorite removes a provider from the user's favorite set.
func (r *MongoUserRepo) RemoveFavorite(userID, providerID string) error {
	return r.updateFavorites(userID, "$pull", providerID)
}

func (r *MongoUserRepo) updateFavorites(userID, operator, providerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{operator: bson.M{"favorites": providerID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update favorites for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
