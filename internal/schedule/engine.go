package schedule

import (
	"github.com/roadwise/driveschool/internal/db"
)

const (
	// MaxStudentsPerExam caps how many candidates share one exam slot.
	MaxStudentsPerExam = 2
	// RetentionDays is how long lesson rows are kept after their date.
	RetentionDays = 30
	// BucketCap limits the recent and upcoming dashboard buckets.
	BucketCap = 50
)

// Engine validates and admits bookings, classifies lessons into dashboard
// buckets and purges rows past the retention horizon. It holds no state of
// its own; every operation takes the current instant explicitly.
type Engine struct {
	Lessons     db.LessonCollection
	Instructors db.InstructorCollection
	Students    db.StudentCollection
	Categories  db.CategoryCollection
	Locks       db.LockCollection
}

// NewEngine creates a scheduling engine over the given collections.
func NewEngine(lessons db.LessonCollection, instructors db.InstructorCollection, students db.StudentCollection, categories db.CategoryCollection, locks db.LockCollection) *Engine {
	return &Engine{
		Lessons:     lessons,
		Instructors: instructors,
		Students:    students,
		Categories:  categories,
		Locks:       locks,
	}
}
