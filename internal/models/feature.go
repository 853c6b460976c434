package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// FeatureVehicles gates whether bookings may reference fleet vehicles.
const FeatureVehicles = "vehicle_management"

// FeatureFlag represents an organisation-level capability toggle.
// Only IsEnabled is consulted; RolloutPercent is persisted for the
// admin UI but not enforced anywhere yet.
type FeatureFlag struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Key            string             `json:"key" bson:"key"`
	IsEnabled      bool               `json:"is_enabled" bson:"is_enabled"`
	RolloutPercent int                `json:"rollout_percent" bson:"rollout_percent"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
