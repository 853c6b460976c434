package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultCategoryName is the licence category theory lessons fall back to
// when the instructor has no qualified categories.
const DefaultCategoryName = "B"

// Category represents a licence category such as "B" or "A1".
type Category struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	IsActive bool               `json:"is_active" bson:"is_active"`
}
