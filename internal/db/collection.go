package db

import (
	"context"
	"time"

	"github.com/roadwise/driveschool/internal/models"
)

// ResourceField names a lesson field that identifies a contended resource.
type ResourceField string

const (
	ResourceInstructor ResourceField = "instructor_id"
	ResourceVehicle    ResourceField = "vehicle_id"
)

// DateRange is an inclusive calendar-date range, both ends "2006-01-02".
type DateRange struct {
	From string
	To   string
}

// LessonCollection defines the interface for lesson data operations.
// Results of the range queries are ordered by lesson date then start time.
type LessonCollection interface {
	InsertLessons(ctx context.Context, lessons []models.Lesson) error
	FindByTypeInRange(ctx context.Context, lessonType models.LessonType, r DateRange) ([]models.Lesson, error)
	FindInRange(ctx context.Context, r DateRange) ([]models.Lesson, error)
	FindByDate(ctx context.Context, date string) ([]models.Lesson, error)
	CountOverlapping(ctx context.Context, field ResourceField, id, date, start, end string) (int64, error)
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) error
	FindVehicles(ctx context.Context) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	SetMaintenance(ctx context.Context, id string, underMaintenance bool) error
}

// InstructorCollection defines the interface for instructor lookups.
// A missing record is reported as (nil, nil).
type InstructorCollection interface {
	FindInstructorByID(ctx context.Context, id string) (*models.Instructor, error)
	FindInstructorByUserID(ctx context.Context, userID string) (*models.Instructor, error)
}

// StudentCollection defines the interface for student lookups.
// A missing record is reported as (nil, nil).
type StudentCollection interface {
	FindStudentByID(ctx context.Context, id string) (*models.Student, error)
}

// CategoryCollection defines the interface for licence category lookups.
// A missing record is reported as (nil, nil).
type CategoryCollection interface {
	FindCategoryByID(ctx context.Context, id string) (*models.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*models.Category, error)
	FindFirstActiveCategory(ctx context.Context) (*models.Category, error)
}

// FlagCollection defines the interface for feature flag reads.
type FlagCollection interface {
	IsEnabled(ctx context.Context, key string) (bool, error)
}

// LockCollection defines the interface for advisory booking locks keyed on
// (resource, date). Acquire returns false when the lock is held by someone
// else and not yet expired.
type LockCollection interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
