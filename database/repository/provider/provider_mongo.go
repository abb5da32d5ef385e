package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stilrandevu/database"
	"stilrandevu/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrProviderNotFound is returned when the provider record does not exist.
var ErrProviderNotFound = errors.New("provider not found")

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll     *mongo.Collection
	apptColl *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	return &MongoProviderRepo{
		coll:     database.Collection("providers"),
		apptColl: database.Collection("appointments"),
	}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoProviderRepo) GetByID(id string) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var provider models.Provider
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) GetAll() ([]models.Provider, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	return r.findProviders(ctx, bson.M{})
}

func (r *MongoProviderRepo) SearchByName(query string) ([]models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}
	return r.findProviders(ctx, filter)
}

func (r *MongoProviderRepo) GetByIDs(ids []string) ([]models.Provider, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.findProviders(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *MongoProviderRepo) findProviders(ctx context.Context, filter bson.M) ([]models.Provider, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)
	var providers []models.Provider
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return providers, nil
}

func (r *MongoProviderRepo) Create(provider *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	now := time.Now()
	provider.CreatedAt = now
	provider.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) Update(provider *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	provider.UpdatedAt = time.Now()
	filter := bson.M{"id": provider.ID}
	update := bson.M{"$set": provider}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", provider.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (r *MongoProviderRepo) UpdateSet(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to patch provider with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (r *MongoProviderRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete provider with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (r *MongoProviderRepo) AddService(providerID string, svc models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	update := bson.M{
		"$push": bson.M{"services": svc},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": providerID}, update)
	if err != nil {
		return fmt.Errorf("failed to add service to provider %s: %w", providerID, err)
	}
	if result.MatchedCount == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (r *MongoProviderRepo) RemoveService(providerID, serviceID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	update := bson.M{
		"$pull": bson.M{"services": bson.M{"id": serviceID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": providerID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove service %s from provider %s: %w", serviceID, providerID, err)
	}
	if result.MatchedCount == 0 {
		return ErrProviderNotFound
	}
	return nil
}
