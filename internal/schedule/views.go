package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/roadwise/driveschool/internal/db"
	"github.com/roadwise/driveschool/internal/models"
)

// ListView sweeps stale rows, then buckets the view's lessons into
// recent / current / upcoming around now.
func (e *Engine) ListView(ctx context.Context, now time.Time, view models.LessonView) (*models.LessonBuckets, error) {
	lessonType, ok := models.LessonTypeForView(view)
	if !ok {
		return nil, invalid("view", ErrUnknownView)
	}

	e.Sweep(ctx, now)

	window := ComputeWindow(now)
	lessons, err := e.Lessons.FindByTypeInRange(ctx, lessonType, db.DateRange{From: window.Yesterday, To: window.Tomorrow})
	if err != nil {
		return nil, err
	}
	return Bucket(lessons, window), nil
}

// ListRange sweeps stale rows, then returns every lesson dated within the
// inclusive range, ordered by date then start time.
func (e *Engine) ListRange(ctx context.Context, now time.Time, from, to string) ([]models.Lesson, error) {
	if _, err := time.Parse(DateLayout, from); err != nil {
		return nil, invalid("from", ErrInvalidDateRange)
	}
	if _, err := time.Parse(DateLayout, to); err != nil {
		return nil, invalid("to", ErrInvalidDateRange)
	}
	if from > to {
		return nil, invalid("from", ErrInvalidDateRange)
	}

	e.Sweep(ctx, now)
	return e.Lessons.FindInRange(ctx, db.DateRange{From: from, To: to})
}

// Bucket classifies lessons against the window. Each lesson lands in at
// most one bucket: a lesson straddling now is current, one already started
// or dated yesterday is recent, the rest of today and tomorrow are
// upcoming. Anything outside the window is dropped. Input must be ordered
// by date then start time; recent is returned newest first. Recent and
// upcoming are capped at BucketCap, current is left uncapped.
func Bucket(lessons []models.Lesson, w Window) *models.LessonBuckets {
	buckets := &models.LessonBuckets{
		Recent:   []models.Lesson{},
		Current:  []models.Lesson{},
		Upcoming: []models.Lesson{},
	}
	for _, lesson := range lessons {
		switch {
		case lesson.LessonDate == w.Yesterday:
			buckets.Recent = append(buckets.Recent, lesson)
		case lesson.LessonDate == w.Today && lesson.StartTime <= w.CurrentTime && lesson.EndTime > w.CurrentTime:
			buckets.Current = append(buckets.Current, lesson)
		case lesson.LessonDate == w.Today && lesson.StartTime < w.CurrentTime:
			buckets.Recent = append(buckets.Recent, lesson)
		case lesson.LessonDate == w.Today || lesson.LessonDate == w.Tomorrow:
			buckets.Upcoming = append(buckets.Upcoming, lesson)
		}
	}

	sort.SliceStable(buckets.Recent, func(i, j int) bool {
		a, b := buckets.Recent[i], buckets.Recent[j]
		if a.LessonDate != b.LessonDate {
			return a.LessonDate > b.LessonDate
		}
		return a.StartTime > b.StartTime
	})
	if len(buckets.Recent) > BucketCap {
		buckets.Recent = buckets.Recent[:BucketCap]
	}
	if len(buckets.Upcoming) > BucketCap {
		buckets.Upcoming = buckets.Upcoming[:BucketCap]
	}
	return buckets
}
