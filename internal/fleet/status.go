package fleet

import (
	"context"
	"time"

	"github.com/roadwise/driveschool/internal/db"
	"github.com/roadwise/driveschool/internal/models"
	"github.com/roadwise/driveschool/internal/schedule"
)

// Service derives live vehicle statuses from the roster and today's
// bookings. Nothing derived here is written back; the stored status is only
// a fallback for inactive vehicles.
type Service struct {
	Vehicles db.VehicleCollection
	Lessons  db.LessonCollection
}

// NewService creates a fleet status service over the given collections.
func NewService(vehicles db.VehicleCollection, lessons db.LessonCollection) *Service {
	return &Service{Vehicles: vehicles, Lessons: lessons}
}

// List returns the roster with each vehicle's status derived at now.
func (s *Service) List(ctx context.Context, now time.Time) ([]models.Vehicle, error) {
	vehicles, err := s.Vehicles.FindVehicles(ctx)
	if err != nil {
		return nil, err
	}
	today := now.Format(schedule.DateLayout)
	lessons, err := s.Lessons.FindByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	return DeriveStatuses(now, vehicles, lessons), nil
}

// DeriveStatuses computes each vehicle's operational status from the
// maintenance flag, live lesson occupancy and the active flag, in that
// priority order. Inactive vehicles keep their stored status.
func DeriveStatuses(now time.Time, vehicles []models.Vehicle, todaysLessons []models.Lesson) []models.Vehicle {
	currentTime := now.Format(schedule.TimeLayout)
	inUse := make(map[string]bool)
	for _, lesson := range todaysLessons {
		if lesson.VehicleID == "" {
			continue
		}
		if lesson.StartTime <= currentTime && currentTime < lesson.EndTime {
			inUse[lesson.VehicleID] = true
		}
	}

	out := make([]models.Vehicle, len(vehicles))
	for i, vehicle := range vehicles {
		switch {
		case vehicle.UnderMaintenance:
			vehicle.Status = models.VehicleMaintenance
		case inUse[vehicle.ID.Hex()]:
			vehicle.Status = models.VehicleInUse
		case vehicle.IsActive:
			vehicle.Status = models.VehicleAvailable
		}
		out[i] = vehicle
	}
	return out
}
