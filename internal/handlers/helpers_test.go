package handlers

import (
	"context"
	"time"

	"github.com/roadwise/driveschool/internal/db"
	"github.com/roadwise/driveschool/internal/models"
	"github.com/roadwise/driveschool/internal/schedule"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixed instant used by the handler tests: 2026-08-31 10:30.
var testNow = time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

// MockFlagCollection is a mock implementation of FlagCollection
type MockFlagCollection struct {
	mock.Mock
}

func (m *MockFlagCollection) IsEnabled(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// recordingLessons keeps inserted rows in memory and serves them back to
// the range queries; overlap forces a conflict result.
type recordingLessons struct {
	inserted []models.Lesson
	overlap  int64
}

func (r *recordingLessons) InsertLessons(ctx context.Context, lessons []models.Lesson) error {
	r.inserted = append(r.inserted, lessons...)
	return nil
}

func (r *recordingLessons) FindByTypeInRange(ctx context.Context, lt models.LessonType, dr db.DateRange) ([]models.Lesson, error) {
	var out []models.Lesson
	for _, lesson := range r.inserted {
		if lesson.LessonType == lt && lesson.LessonDate >= dr.From && lesson.LessonDate <= dr.To {
			out = append(out, lesson)
		}
	}
	return out, nil
}

func (r *recordingLessons) FindInRange(ctx context.Context, dr db.DateRange) ([]models.Lesson, error) {
	var out []models.Lesson
	for _, lesson := range r.inserted {
		if lesson.LessonDate >= dr.From && lesson.LessonDate <= dr.To {
			out = append(out, lesson)
		}
	}
	return out, nil
}

func (r *recordingLessons) FindByDate(ctx context.Context, date string) ([]models.Lesson, error) {
	var out []models.Lesson
	for _, lesson := range r.inserted {
		if lesson.LessonDate == date {
			out = append(out, lesson)
		}
	}
	return out, nil
}

func (r *recordingLessons) CountOverlapping(ctx context.Context, field db.ResourceField, id, date, start, end string) (int64, error) {
	return r.overlap, nil
}

func (r *recordingLessons) DeleteBefore(ctx context.Context, date string) (int64, error) {
	return 0, nil
}

type stubInstructors struct {
	byID map[string]*models.Instructor
}

func (s *stubInstructors) FindInstructorByID(ctx context.Context, id string) (*models.Instructor, error) {
	return s.byID[id], nil
}

func (s *stubInstructors) FindInstructorByUserID(ctx context.Context, userID string) (*models.Instructor, error) {
	for _, instructor := range s.byID {
		if instructor.UserID == userID {
			return instructor, nil
		}
	}
	return nil, nil
}

type stubStudents struct {
	byID map[string]*models.Student
}

func (s *stubStudents) FindStudentByID(ctx context.Context, id string) (*models.Student, error) {
	return s.byID[id], nil
}

type stubCategories struct {
	category *models.Category
}

func (s *stubCategories) FindCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return s.category, nil
}

func (s *stubCategories) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return s.category, nil
}

func (s *stubCategories) FindFirstActiveCategory(ctx context.Context) (*models.Category, error) {
	return s.category, nil
}

type stubLocks struct{}

func (s *stubLocks) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (s *stubLocks) Release(ctx context.Context, key string) error {
	return nil
}

type lessonTestEnv struct {
	handler *LessonHandler
	lessons *recordingLessons
	flags   *MockFlagCollection
}

// newLessonTestEnv wires a real engine over in-memory stores with one
// qualified instructor "inst-1" and students "stud-1", "stud-2".
func newLessonTestEnv() *lessonTestEnv {
	categoryB := &models.Category{ID: primitive.NewObjectID(), Name: "B", IsActive: true}
	lessons := &recordingLessons{}
	engine := schedule.NewEngine(
		lessons,
		&stubInstructors{byID: map[string]*models.Instructor{
			"inst-1": {UserID: "user-1", QualifiedCategoryIDs: []string{categoryB.ID.Hex()}},
			"inst-2": {UserID: "user-2", QualifiedCategoryIDs: []string{categoryB.ID.Hex()}},
		}},
		&stubStudents{byID: map[string]*models.Student{
			"stud-1": {FirstName: "Ana"},
			"stud-2": {FirstName: "Ben"},
		}},
		&stubCategories{category: categoryB},
		&stubLocks{},
	)

	flags := new(MockFlagCollection)
	handler := NewLessonHandler(engine, flags)
	handler.now = func() time.Time { return testNow }
	return &lessonTestEnv{handler: handler, lessons: lessons, flags: flags}
}
