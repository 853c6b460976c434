package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// bookingLock is an advisory lock document. The _id doubles as the lock key
// so a second Acquire for the same resource/date hits the unique index.
type bookingLock struct {
	ID        string    `bson:"_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

// LockKey builds the advisory lock key for a resource on a calendar date.
func LockKey(field ResourceField, id, date string) string {
	return fmt.Sprintf("%s:%s:%s", field, id, date)
}

// MongoLockCollection implements LockCollection for MongoDB.
type MongoLockCollection struct {
	Collection *mongo.Collection
}

// Acquire takes the lock, stealing it first if a previous holder's lease
// has expired. Returns false when the lock is held and still live.
func (c *MongoLockCollection) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if c.Collection == nil {
		return false, fmt.Errorf("mongo collection is nil")
	}
	now := time.Now()
	lock := bookingLock{ID: key, ExpiresAt: now.Add(ttl), CreatedAt: now}

	_, err := c.Collection.InsertOne(ctx, lock)
	if err == nil {
		return true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return false, err
	}

	// Reclaim an expired lease, then retry once.
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": key, "expires_at": bson.M{"$lt": now}})
	if err != nil {
		return false, err
	}
	if result.DeletedCount == 0 {
		return false, nil
	}
	_, err = c.Collection.InsertOne(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Release drops the lock. Releasing a lock that is already gone is not an
// error.
func (c *MongoLockCollection) Release(ctx context.Context, key string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
