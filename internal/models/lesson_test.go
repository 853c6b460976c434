package models

import (
	"testing"
)

func TestLessonTypeForView(t *testing.T) {
	tests := []struct {
		name     string
		view     LessonView
		expected LessonType
		ok       bool
	}{
		{"driving view", ViewDriving, LessonDriving, true},
		{"code view", ViewCode, LessonTheory, true},
		{"exams view", ViewExams, LessonExam, true},
		{"unknown view", "everything", "", false},
		{"empty view", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LessonTypeForView(tt.view)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("LessonTypeForView(%s) = (%s, %v), want (%s, %v)", tt.view, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
