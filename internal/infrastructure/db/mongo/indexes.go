package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the registrars rely on. The unique
// indexes are the authoritative uniqueness guarantee; the pre-write existence
// queries only exist to produce friendly errors ahead of the constraint.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		collectionContainers: {
			{Keys: bson.D{{Key: "container_code", Value: 1}}, Options: unique},
		},
		collectionProducts: {
			{Keys: bson.D{{Key: "sku", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "container_id", Value: 1}}},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		collectionAccounts: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		collectionAuditEvents: {
			{Keys: bson.D{{Key: "entity_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}
