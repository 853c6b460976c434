package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/roadwise/driveschool/internal/db"
	"github.com/roadwise/driveschool/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes over the db interfaces shared by the engine tests.

type fakeLessons struct {
	lessons   []models.Lesson
	insertErr error
	deleteErr error

	deleteCutoffs []string
}

func (f *fakeLessons) InsertLessons(ctx context.Context, lessons []models.Lesson) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.lessons = append(f.lessons, lessons...)
	return nil
}

func (f *fakeLessons) FindByTypeInRange(ctx context.Context, lessonType models.LessonType, r db.DateRange) ([]models.Lesson, error) {
	var out []models.Lesson
	for _, lesson := range f.lessons {
		if lesson.LessonType == lessonType && lesson.LessonDate >= r.From && lesson.LessonDate <= r.To {
			out = append(out, lesson)
		}
	}
	sortLessons(out)
	return out, nil
}

func (f *fakeLessons) FindInRange(ctx context.Context, r db.DateRange) ([]models.Lesson, error) {
	var out []models.Lesson
	for _, lesson := range f.lessons {
		if lesson.LessonDate >= r.From && lesson.LessonDate <= r.To {
			out = append(out, lesson)
		}
	}
	sortLessons(out)
	return out, nil
}

func (f *fakeLessons) FindByDate(ctx context.Context, date string) ([]models.Lesson, error) {
	var out []models.Lesson
	for _, lesson := range f.lessons {
		if lesson.LessonDate == date {
			out = append(out, lesson)
		}
	}
	sortLessons(out)
	return out, nil
}

func (f *fakeLessons) CountOverlapping(ctx context.Context, field db.ResourceField, id, date, start, end string) (int64, error) {
	var n int64
	for _, lesson := range f.lessons {
		resource := lesson.InstructorID
		if field == db.ResourceVehicle {
			resource = lesson.VehicleID
		}
		if resource == id && lesson.LessonDate == date && lesson.StartTime < end && lesson.EndTime > start {
			n++
		}
	}
	return n, nil
}

func (f *fakeLessons) DeleteBefore(ctx context.Context, date string) (int64, error) {
	f.deleteCutoffs = append(f.deleteCutoffs, date)
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var kept []models.Lesson
	var deleted int64
	for _, lesson := range f.lessons {
		if lesson.LessonDate < date {
			deleted++
			continue
		}
		kept = append(kept, lesson)
	}
	f.lessons = kept
	return deleted, nil
}

func sortLessons(lessons []models.Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].LessonDate != lessons[j].LessonDate {
			return lessons[i].LessonDate < lessons[j].LessonDate
		}
		return lessons[i].StartTime < lessons[j].StartTime
	})
}

type fakeInstructors struct {
	byID map[string]*models.Instructor
}

func (f *fakeInstructors) FindInstructorByID(ctx context.Context, id string) (*models.Instructor, error) {
	return f.byID[id], nil
}

func (f *fakeInstructors) FindInstructorByUserID(ctx context.Context, userID string) (*models.Instructor, error) {
	for _, instructor := range f.byID {
		if instructor.UserID == userID {
			return instructor, nil
		}
	}
	return nil, nil
}

type fakeStudents struct {
	byID map[string]*models.Student
}

func (f *fakeStudents) FindStudentByID(ctx context.Context, id string) (*models.Student, error) {
	return f.byID[id], nil
}

type fakeCategories struct {
	byName      map[string]*models.Category
	firstActive *models.Category
}

func (f *fakeCategories) FindCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	for _, category := range f.byName {
		if category.ID.Hex() == id {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategories) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return f.byName[name], nil
}

func (f *fakeCategories) FindFirstActiveCategory(ctx context.Context) (*models.Category, error) {
	return f.firstActive, nil
}

type fakeLocks struct {
	held        map[string]bool
	denyAcquire bool

	acquired []string
	released []string
}

func (f *fakeLocks) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.denyAcquire || f.held[key] {
		return false, nil
	}
	if f.held == nil {
		f.held = map[string]bool{}
	}
	f.held[key] = true
	f.acquired = append(f.acquired, key)
	return true, nil
}

func (f *fakeLocks) Release(ctx context.Context, key string) error {
	delete(f.held, key)
	f.released = append(f.released, key)
	return nil
}

type testFixture struct {
	engine      *Engine
	lessons     *fakeLessons
	instructors *fakeInstructors
	students    *fakeStudents
	categories  *fakeCategories
	locks       *fakeLocks

	categoryB primitive.ObjectID
}

// newFixture builds an engine over fresh fakes with one qualified
// instructor ("inst-1"), one unqualified ("inst-2"), two students and an
// active category B.
func newFixture() *testFixture {
	categoryB := primitive.NewObjectID()
	f := &testFixture{
		lessons: &fakeLessons{},
		instructors: &fakeInstructors{byID: map[string]*models.Instructor{
			"inst-1": {UserID: "user-1", QualifiedCategoryIDs: []string{categoryB.Hex()}},
			"inst-2": {UserID: "user-2"},
		}},
		students: &fakeStudents{byID: map[string]*models.Student{
			"stud-1": {FirstName: "Ana"},
			"stud-2": {FirstName: "Ben"},
		}},
		categories: &fakeCategories{byName: map[string]*models.Category{
			"B": {ID: categoryB, Name: "B", IsActive: true},
		}},
		locks:     &fakeLocks{},
		categoryB: categoryB,
	}
	f.engine = NewEngine(f.lessons, f.instructors, f.students, f.categories, f.locks)
	return f
}

func drivingRequest() models.BookingRequest {
	return models.BookingRequest{
		LessonType:   models.LessonDriving,
		InstructorID: "inst-1",
		StudentID:    "stud-1",
		VehicleID:    "veh-1",
		LessonDate:   "2026-09-01",
		StartTime:    "10:00",
		EndTime:      "11:00",
	}
}
