package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/roadwise/driveschool/internal/db"
	"github.com/roadwise/driveschool/internal/fleet"
	"github.com/roadwise/driveschool/internal/middleware"
	"github.com/roadwise/driveschool/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleHandler handles fleet roster and maintenance requests.
type VehicleHandler struct {
	fleet    *fleet.Service
	vehicles db.VehicleCollection
	now      func() time.Time
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(fleetService *fleet.Service, vehicles db.VehicleCollection) *VehicleHandler {
	return &VehicleHandler{
		fleet:    fleetService,
		vehicles: vehicles,
		now:      time.Now,
	}
}

// Vehicles dispatches /api/vehicles: GET lists the roster with derived
// statuses, POST registers a vehicle.
func (h *VehicleHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *VehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.fleet.List(r.Context(), h.now())
	if err != nil {
		http.Error(w, "Failed to list vehicles", http.StatusInternalServerError)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicles)
}

func (h *VehicleHandler) create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok || (claims.Role != models.RoleAdmin && claims.Role != models.RoleManager) {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal(body, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if vehicle.Plate == "" {
		http.Error(w, "Plate is required", http.StatusBadRequest)
		return
	}

	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = h.now()
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleOutOfService
	}

	if err := h.vehicles.InsertVehicle(r.Context(), vehicle); err != nil {
		http.Error(w, "Failed to create vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(vehicle)
}

// Maintenance handles PUT /api/vehicles/{id}/maintenance, toggling the
// externally owned maintenance flag.
func (h *VehicleHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/vehicles/"), "/maintenance")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Vehicle ID required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req models.MaintenanceRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.vehicles.SetMaintenance(r.Context(), id, req.UnderMaintenance); err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
