package db

import (
	"context"
	"fmt"

	"github.com/roadwise/driveschool/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoFlagCollection implements FlagCollection for MongoDB.
type MongoFlagCollection struct {
	Collection *mongo.Collection
}

// IsEnabled reports whether a feature flag is switched on. An absent flag
// counts as disabled.
func (c *MongoFlagCollection) IsEnabled(ctx context.Context, key string) (bool, error) {
	if c.Collection == nil {
		return false, fmt.Errorf("mongo collection is nil")
	}
	var flag models.FeatureFlag
	err := c.Collection.FindOne(ctx, bson.M{"key": key}).Decode(&flag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}
	return flag.IsEnabled, nil
}
