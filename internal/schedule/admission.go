package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roadwise/driveschool/internal/db"
	"github.com/roadwise/driveschool/internal/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// lockTTL bounds how long an admission may hold its advisory locks; a
// crashed request's locks become stealable after this lease expires.
const lockTTL = 10 * time.Second

// Book validates a booking request and, if it passes, persists one lesson
// row per student as a single batch. Admission is all-or-nothing: any
// failed check or a time conflict on the instructor or vehicle leaves the
// store untouched.
func (e *Engine) Book(ctx context.Context, now time.Time, req models.BookingRequest) ([]models.Lesson, error) {
	plan, err := e.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	release, err := e.lockResources(ctx, req)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := e.checkConflicts(ctx, req); err != nil {
		return nil, err
	}

	lessons := buildLessons(plan, now)
	if err := e.Lessons.InsertLessons(ctx, lessons); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"lesson_type":   req.LessonType,
		"instructor_id": req.InstructorID,
		"lesson_date":   req.LessonDate,
		"rows":          len(lessons),
	}).Info("booking admitted")
	return lessons, nil
}

// lockResources takes advisory locks for the instructor and, when set, the
// vehicle on the booking date. The returned func releases whatever was
// acquired and is safe to call after a partial failure.
func (e *Engine) lockResources(ctx context.Context, req models.BookingRequest) (func(), error) {
	keys := []string{db.LockKey(db.ResourceInstructor, req.InstructorID, req.LessonDate)}
	if req.VehicleID != "" {
		keys = append(keys, db.LockKey(db.ResourceVehicle, req.VehicleID, req.LessonDate))
	}

	var held []string
	release := func() {
		for _, key := range held {
			if err := e.Locks.Release(context.WithoutCancel(ctx), key); err != nil {
				log.WithError(err).WithField("key", key).Warn("failed to release booking lock")
			}
		}
	}

	for _, key := range keys {
		ok, err := e.Locks.Acquire(ctx, key, lockTTL)
		if err != nil {
			release()
			return nil, err
		}
		if !ok {
			release()
			return nil, ErrResourceConflict
		}
		held = append(held, key)
	}
	return release, nil
}

// checkConflicts rejects the booking when an existing lesson for the same
// instructor or vehicle overlaps the requested time range on that date.
func (e *Engine) checkConflicts(ctx context.Context, req models.BookingRequest) error {
	n, err := e.Lessons.CountOverlapping(ctx, db.ResourceInstructor, req.InstructorID, req.LessonDate, req.StartTime, req.EndTime)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrResourceConflict
	}
	if req.VehicleID != "" {
		n, err = e.Lessons.CountOverlapping(ctx, db.ResourceVehicle, req.VehicleID, req.LessonDate, req.StartTime, req.EndTime)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrResourceConflict
		}
	}
	return nil
}

// buildLessons expands the validated plan into lesson rows. Exam types get
// one row per candidate sharing a booking group id.
func buildLessons(plan *bookingPlan, now time.Time) []models.Lesson {
	groupID := ""
	if plan.req.LessonType == models.LessonExam || plan.req.LessonType == models.LessonTheoryExam {
		groupID = uuid.NewString()
	}

	lessons := make([]models.Lesson, 0, len(plan.studentIDs))
	for _, studentID := range plan.studentIDs {
		lessons = append(lessons, models.Lesson{
			ID:              primitive.NewObjectID(),
			BookingGroupID:  groupID,
			LessonType:      plan.req.LessonType,
			StudentID:       studentID,
			InstructorID:    plan.req.InstructorID,
			VehicleID:       plan.req.VehicleID,
			CategoryID:      plan.categoryID,
			LessonDate:      plan.req.LessonDate,
			StartTime:       plan.req.StartTime,
			EndTime:         plan.req.EndTime,
			DurationMinutes: plan.duration,
			Status:          models.LessonScheduled,
			CreatedAt:       now,
		})
	}
	return lessons
}
