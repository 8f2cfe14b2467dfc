// Package repository provides data access for stock levels.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StockConfig represents a stock level configuration document for a currency.
// Levels maps denomination values (as decimal strings, BSON map keys must be
// strings) to available counts in the configured unit.
type StockConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Currency  string                 `bson:"currency" json:"currency"`
	Levels    map[string]int64       `bson:"levels" json:"levels"`
	Unit      string                 `bson:"unit" json:"unit"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// StockRepository provides methods for stock level operations.
type StockRepository struct {
	collection *mongo.Collection
}

// NewStockRepository creates a new stock repository.
func NewStockRepository(db *MongoDB) *StockRepository {
	return &StockRepository{
		collection: db.Stock,
	}
}

// GetActive returns the active stock configuration for a currency.
// Returns nil without error when no configuration exists.
func (r *StockRepository) GetActive(ctx context.Context, currency string) (*StockConfig, error) {
	var config StockConfig
	err := r.collection.FindOne(ctx, bson.M{"currency": currency, "active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates any previous configuration for the currency and inserts
// a new active one.
func (r *StockRepository) Create(ctx context.Context, currency string, levels map[string]int64, unit, createdBy string) (*StockConfig, error) {
	prev, err := r.GetActive(ctx, currency)
	if err != nil {
		return nil, err
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"currency": currency, "active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	version := 1
	if prev != nil {
		version = prev.Version + 1
	}

	config := StockConfig{
		ID:        primitive.NewObjectID(),
		Currency:  currency,
		Levels:    levels,
		Unit:      unit,
		Active:    true,
		Version:   version,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// History returns past stock configurations for a currency, newest first.
func (r *StockRepository) History(ctx context.Context, currency string, limit int) ([]StockConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"currency": currency}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []StockConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
