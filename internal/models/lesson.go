package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// LessonType distinguishes the four kinds of bookable sessions.
type LessonType string

const (
	LessonTheory     LessonType = "THEORY"
	LessonDriving    LessonType = "DRIVING"
	LessonExam       LessonType = "EXAM"
	LessonTheoryExam LessonType = "THEORY_EXAM"
)

// LessonStatus is the lifecycle state of a lesson. Admission only ever
// writes LessonScheduled; later transitions belong to an external workflow.
type LessonStatus string

const (
	LessonScheduled  LessonStatus = "SCHEDULED"
	LessonInProgress LessonStatus = "IN_PROGRESS"
	LessonCompleted  LessonStatus = "COMPLETED"
	LessonCancelled  LessonStatus = "CANCELLED"
	LessonPending    LessonStatus = "PENDING"
)

// LessonView selects which lesson type a dashboard listing covers.
type LessonView string

const (
	ViewDriving LessonView = "driving"
	ViewCode    LessonView = "code"
	ViewExams   LessonView = "exams"
)

// LessonTypeForView maps a dashboard view to the lesson type it lists.
func LessonTypeForView(view LessonView) (LessonType, bool) {
	switch view {
	case ViewDriving:
		return LessonDriving, true
	case ViewCode:
		return LessonTheory, true
	case ViewExams:
		return LessonExam, true
	default:
		return "", false
	}
}

// Lesson represents one booked session. Exams with several candidates are
// stored as one row per student, linked by BookingGroupID.
// LessonDate is "2006-01-02" and the times are "15:04" so that string
// comparison in queries matches chronological order.
type Lesson struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BookingGroupID  string             `json:"booking_group_id,omitempty" bson:"booking_group_id,omitempty"`
	LessonType      LessonType         `json:"lesson_type" bson:"lesson_type"`
	StudentID       string             `json:"student_id,omitempty" bson:"student_id,omitempty"`
	InstructorID    string             `json:"instructor_id" bson:"instructor_id"`
	VehicleID       string             `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty"`
	CategoryID      string             `json:"category_id" bson:"category_id"`
	LessonDate      string             `json:"lesson_date" bson:"lesson_date"`
	StartTime       string             `json:"start_time" bson:"start_time"`
	EndTime         string             `json:"end_time" bson:"end_time"`
	DurationMinutes int                `json:"duration_minutes" bson:"duration_minutes"`
	Status          LessonStatus       `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
}

// BookingRequest is the payload for creating a lesson or exam booking.
// StudentID is used by single-student types, StudentIDs by exam types.
type BookingRequest struct {
	LessonType   LessonType `json:"lesson_type" validate:"required,oneof=THEORY DRIVING EXAM THEORY_EXAM"`
	InstructorID string     `json:"instructor_id" validate:"required"`
	StudentID    string     `json:"student_id,omitempty"`
	StudentIDs   []string   `json:"student_ids,omitempty"`
	VehicleID    string     `json:"vehicle_id,omitempty"`
	LessonDate   string     `json:"lesson_date" validate:"required,datetime=2006-01-02"`
	StartTime    string     `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string     `json:"end_time" validate:"required,datetime=15:04"`
}

// LessonBuckets is the three-way dashboard classification of lessons
// around the current instant.
type LessonBuckets struct {
	Recent   []Lesson `json:"recent"`
	Current  []Lesson `json:"current"`
	Upcoming []Lesson `json:"upcoming"`
}
