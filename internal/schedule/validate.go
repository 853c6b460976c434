package schedule

import (
	"context"

	"github.com/roadwise/driveschool/internal/models"
)

// bookingPlan is a validated booking ready for admission. studentIDs holds
// one entry per lesson row to create; a group theory class has a single
// empty entry.
type bookingPlan struct {
	req        models.BookingRequest
	duration   int
	categoryID string
	studentIDs []string
}

// validate runs the structural checks in order: time range, instructor
// existence, category resolution, student cardinality. No rows are touched.
func (e *Engine) validate(ctx context.Context, req models.BookingRequest) (*bookingPlan, error) {
	duration, err := Duration(req.StartTime, req.EndTime)
	if err != nil {
		return nil, invalid("start_time", ErrInvalidTimeRange)
	}
	if duration <= 0 {
		return nil, invalid("end_time", ErrInvalidTimeRange)
	}

	instructor, err := e.Instructors.FindInstructorByID(ctx, req.InstructorID)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, invalid("instructor_id", ErrInstructorNotFound)
	}

	categoryID, err := e.resolveCategory(ctx, req.LessonType, instructor)
	if err != nil {
		return nil, err
	}

	studentIDs, err := e.resolveStudents(ctx, req)
	if err != nil {
		return nil, err
	}

	return &bookingPlan{
		req:        req,
		duration:   duration,
		categoryID: categoryID,
		studentIDs: studentIDs,
	}, nil
}

// resolveCategory picks the licence category for the booking. Theory
// lessons may fall back to the default category or any active one when the
// instructor has no qualifications; every other type requires one.
func (e *Engine) resolveCategory(ctx context.Context, lessonType models.LessonType, instructor *models.Instructor) (string, error) {
	if len(instructor.QualifiedCategoryIDs) > 0 {
		return instructor.QualifiedCategoryIDs[0], nil
	}
	if lessonType != models.LessonTheory {
		return "", invalid("instructor_id", ErrInstructorNotQualified)
	}
	category, err := e.Categories.FindCategoryByName(ctx, models.DefaultCategoryName)
	if err != nil {
		return "", err
	}
	if category == nil {
		category, err = e.Categories.FindFirstActiveCategory(ctx)
		if err != nil {
			return "", err
		}
	}
	if category == nil {
		// Seeding problem, not a caller mistake.
		return "", ErrNoCategoryAvailable
	}
	return category.ID.Hex(), nil
}

// resolveStudents enforces per-type cardinality and checks every referenced
// student exists. The returned slice has one entry per lesson row.
func (e *Engine) resolveStudents(ctx context.Context, req models.BookingRequest) ([]string, error) {
	switch req.LessonType {
	case models.LessonExam, models.LessonTheoryExam:
		if len(req.StudentIDs) == 0 {
			return nil, invalid("student_ids", ErrNoStudents)
		}
		if len(req.StudentIDs) > MaxStudentsPerExam {
			return nil, invalid("student_ids", ErrTooManyStudents)
		}
		for _, id := range req.StudentIDs {
			if err := e.requireStudent(ctx, id); err != nil {
				return nil, err
			}
		}
		return req.StudentIDs, nil

	case models.LessonDriving:
		if req.StudentID == "" {
			return nil, invalid("student_id", ErrStudentRequired)
		}
		if err := e.requireStudent(ctx, req.StudentID); err != nil {
			return nil, err
		}
		return []string{req.StudentID}, nil

	default: // THEORY: absent student means a group class
		if req.StudentID != "" {
			if err := e.requireStudent(ctx, req.StudentID); err != nil {
				return nil, err
			}
		}
		return []string{req.StudentID}, nil
	}
}

func (e *Engine) requireStudent(ctx context.Context, id string) error {
	student, err := e.Students.FindStudentByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return invalid("student_id", ErrStudentNotFound)
	}
	return nil
}
