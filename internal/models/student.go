package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Student represents an enrolled learner.
type Student struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id,omitempty" bson:"user_id,omitempty"`
	FirstName string             `json:"first_name" bson:"first_name"`
	LastName  string             `json:"last_name" bson:"last_name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
