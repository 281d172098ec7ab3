package tripRepo

import (
	"context"
	"fmt"
	"time"

	"tripcraft/database"
	"tripcraft/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTripRepo implements TripRepository using MongoDB.
type MongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo creates a new instance of TripRepository using MongoDB.
func NewMongoTripRepo() TripRepository {
	coll := database.MongoClient.Database("tripcraft").Collection("trips")
	repo := &MongoTripRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTripRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "details.destination", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a trip intake document by its unique ID.
func (r *MongoTripRepo) GetByID(id string) (*models.TripIntake, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trip models.TripIntake
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("trip with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch trip with id %s: %w", id, err)
	}
	return &trip, nil
}

// Create inserts a new trip intake document.
func (r *MongoTripRepo) Create(trip *models.TripIntake) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, trip)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// Update replaces an existing trip intake document.
func (r *MongoTripRepo) Update(trip *models.TripIntake) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	trip.UpdatedAt = time.Now()
	filter := bson.M{"id": trip.ID}
	update := bson.M{"$set": trip}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update trip with id %s: %w", trip.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", trip.ID)
	}
	return nil
}

// UpdateComponents writes the package components and running total back into
// the trip intake document.
func (r *MongoTripRepo) UpdateComponents(tripID string, components []models.PackageComponent, total float64, currency string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": tripID}
	update := bson.M{"$set": bson.M{
		"components": components,
		"totalPrice": total,
		"currency":   currency,
		"updatedAt":  time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to write components for trip %s: %w", tripID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", tripID)
	}
	return nil
}

// Delete removes a trip intake document by its ID.
func (r *MongoTripRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trip with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trip with id %s not found", id)
	}
	return nil
}
