package db

import (
	"context"
	"fmt"

	"github.com/roadwise/driveschool/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoInstructorCollection implements InstructorCollection for MongoDB.
type MongoInstructorCollection struct {
	Collection *mongo.Collection
}

// FindInstructorByID finds an instructor by ID, (nil, nil) when missing.
func (c *MongoInstructorCollection) FindInstructorByID(ctx context.Context, id string) (*models.Instructor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var instructor models.Instructor
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&instructor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &instructor, nil
}

// FindInstructorByUserID finds the instructor row linked to a user account.
func (c *MongoInstructorCollection) FindInstructorByUserID(ctx context.Context, userID string) (*models.Instructor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var instructor models.Instructor
	err := c.Collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&instructor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &instructor, nil
}

// MongoStudentCollection implements StudentCollection for MongoDB.
type MongoStudentCollection struct {
	Collection *mongo.Collection
}

// FindStudentByID finds a student by ID, (nil, nil) when missing.
func (c *MongoStudentCollection) FindStudentByID(ctx context.Context, id string) (*models.Student, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var student models.Student
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

// MongoCategoryCollection implements CategoryCollection for MongoDB.
type MongoCategoryCollection struct {
	Collection *mongo.Collection
}

// FindCategoryByID finds a category by ID, (nil, nil) when missing.
func (c *MongoCategoryCollection) FindCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var category models.Category
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// FindCategoryByName finds an active category by name, (nil, nil) when missing.
func (c *MongoCategoryCollection) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var category models.Category
	err := c.Collection.FindOne(ctx, bson.M{"name": name, "is_active": true}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// FindFirstActiveCategory returns any active category, (nil, nil) when the
// category table is empty.
func (c *MongoCategoryCollection) FindFirstActiveCategory(ctx context.Context) (*models.Category, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var category models.Category
	err := c.Collection.FindOne(ctx, bson.M{"is_active": true}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
