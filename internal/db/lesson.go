package db

import (
	"context"
	"fmt"

	"github.com/roadwise/driveschool/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLessonCollection implements LessonCollection for MongoDB. Client is
// used to run multi-row inserts in a transaction; when nil (standalone
// server, tests) the batch falls back to an ordered InsertMany.
type MongoLessonCollection struct {
	Collection *mongo.Collection
	Client     *mongo.Client
}

var lessonSort = bson.D{{Key: "lesson_date", Value: 1}, {Key: "start_time", Value: 1}}

// InsertLessons persists a booking batch. All rows are written or none.
func (c *MongoLessonCollection) InsertLessons(ctx context.Context, lessons []models.Lesson) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	if len(lessons) == 0 {
		return fmt.Errorf("empty lesson batch")
	}
	docs := make([]interface{}, len(lessons))
	for i, lesson := range lessons {
		docs[i] = lesson
	}
	if c.Client == nil {
		_, err := c.Collection.InsertMany(ctx, docs)
		return err
	}
	session, err := c.Client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return c.Collection.InsertMany(sc, docs)
	})
	return err
}

// FindByTypeInRange returns lessons of one type dated within the range,
// ordered by date then start time.
func (c *MongoLessonCollection) FindByTypeInRange(ctx context.Context, lessonType models.LessonType, r DateRange) ([]models.Lesson, error) {
	filter := bson.M{
		"lesson_type": lessonType,
		"lesson_date": bson.M{"$gte": r.From, "$lte": r.To},
	}
	return c.find(ctx, filter)
}

// FindInRange returns every lesson dated within the range regardless of
// type, ordered by date then start time.
func (c *MongoLessonCollection) FindInRange(ctx context.Context, r DateRange) ([]models.Lesson, error) {
	filter := bson.M{"lesson_date": bson.M{"$gte": r.From, "$lte": r.To}}
	return c.find(ctx, filter)
}

// FindByDate returns every lesson on one calendar date.
func (c *MongoLessonCollection) FindByDate(ctx context.Context, date string) ([]models.Lesson, error) {
	return c.find(ctx, bson.M{"lesson_date": date})
}

// CountOverlapping counts lessons for the given resource on the given date
// whose [start, end) interval intersects [start, end).
func (c *MongoLessonCollection) CountOverlapping(ctx context.Context, field ResourceField, id, date, start, end string) (int64, error) {
	if c.Collection == nil {
		return 0, fmt.Errorf("mongo collection is nil")
	}
	filter := bson.M{
		string(field): id,
		"lesson_date": date,
		"start_time":  bson.M{"$lt": end},
		"end_time":    bson.M{"$gt": start},
		"status":      bson.M{"$ne": models.LessonCancelled},
	}
	return c.Collection.CountDocuments(ctx, filter)
}

// DeleteBefore removes every lesson dated strictly before the cutoff and
// returns the number of rows removed.
func (c *MongoLessonCollection) DeleteBefore(ctx context.Context, date string) (int64, error) {
	if c.Collection == nil {
		return 0, fmt.Errorf("mongo collection is nil")
	}
	result, err := c.Collection.DeleteMany(ctx, bson.M{"lesson_date": bson.M{"$lt": date}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (c *MongoLessonCollection) find(ctx context.Context, filter bson.M) ([]models.Lesson, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter, options.Find().SetSort(lessonSort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var lessons []models.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}
