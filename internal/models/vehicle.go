package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// VehicleStatus is a vehicle's operational state. MAINTENANCE, IN_USE and
// AVAILABLE are derived at read time; anything else is the stored fallback.
type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "AVAILABLE"
	VehicleInUse        VehicleStatus = "IN_USE"
	VehicleMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

// Vehicle represents a training vehicle in the school's fleet.
type Vehicle struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Plate            string             `json:"plate" bson:"plate"`
	Make             string             `json:"make" bson:"make"`
	Model            string             `json:"model" bson:"model"`
	Year             int                `json:"year" bson:"year"`
	CategoryID       string             `json:"category_id" bson:"category_id"`
	IsActive         bool               `json:"is_active" bson:"is_active"`
	UnderMaintenance bool               `json:"under_maintenance" bson:"under_maintenance"`
	Status           VehicleStatus      `json:"status" bson:"status"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}

// MaintenanceRequest toggles a vehicle's maintenance flag.
type MaintenanceRequest struct {
	UnderMaintenance bool `json:"under_maintenance"`
}
