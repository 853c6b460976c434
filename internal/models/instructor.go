package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Instructor represents a teaching member of staff. QualifiedCategoryIDs
// lists the licence categories the instructor may teach or examine, in
// preference order.
type Instructor struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID               string             `json:"user_id" bson:"user_id"`
	FirstName            string             `json:"first_name" bson:"first_name"`
	LastName             string             `json:"last_name" bson:"last_name"`
	QualifiedCategoryIDs []string           `json:"qualified_category_ids" bson:"qualified_category_ids"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
}
