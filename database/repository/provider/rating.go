package providerRepo

import (
	"context"
	"errors"
	"fmt"

	"stilrandevu/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAppointmentAlreadyRated is returned when the appointment's isRated flag
// has already been flipped by another writer.
var ErrAppointmentAlreadyRated = errors.New("appointment already rated")

// ApplyRating folds one star value into the provider's rating aggregate and
// marks the appointment as rated, all inside a single Mongo transaction. The
// driver retries the transaction on transient write conflicts, so concurrent
// votes against the same provider never lose an update.
func (r *MongoProviderRepo) ApplyRating(ctx context.Context, providerID, appointmentID string, stars int) (*models.RatingResult, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	result, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var provider models.Provider
		if err := r.coll.FindOne(sc, bson.M{"id": providerID}).Decode(&provider); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrProviderNotFound
			}
			return nil, fmt.Errorf("failed to read provider aggregate: %w", err)
		}

		newRating, newVotes := models.NextAggregate(provider.Rating, provider.TotalVotes, stars)

		update := bson.M{"$set": bson.M{"rating": newRating, "totalVotes": newVotes}}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": providerID, "totalVotes": provider.TotalVotes}, update)
		if err != nil {
			return nil, fmt.Errorf("failed to write provider aggregate: %w", err)
		}
		if res.MatchedCount == 0 {
			// Another vote landed between read and write; abort so the
			// transaction is retried against the fresh aggregate.
			return nil, fmt.Errorf("concurrent aggregate update for provider %s", providerID)
		}

		apptRes, err := r.apptColl.UpdateOne(sc,
			bson.M{"id": appointmentID, "isRated": false},
			bson.M{"$set": bson.M{"isRated": true}},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to mark appointment rated: %w", err)
		}
		if apptRes.MatchedCount == 0 {
			return nil, ErrAppointmentAlreadyRated
		}

		return &models.RatingResult{Rating: newRating, TotalVotes: newVotes}, nil
	})
	if err != nil {
		if errors.Is(err, ErrProviderNotFound) || errors.Is(err, ErrAppointmentAlreadyRated) {
			return nil, err
		}
		return nil, fmt.Errorf("rating transaction failed: %w", err)
	}

	return result.(*models.RatingResult), nil
}
