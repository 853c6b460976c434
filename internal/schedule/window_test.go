package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	w := ComputeWindow(now)

	assert.Equal(t, "2026-03-13", w.Yesterday)
	assert.Equal(t, "2026-03-14", w.Today)
	assert.Equal(t, "2026-03-15", w.Tomorrow)
	assert.Equal(t, "10:30", w.CurrentTime)
}

func TestComputeWindow_MonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 5, 0, 0, time.UTC)
	w := ComputeWindow(now)

	assert.Equal(t, "2026-02-28", w.Yesterday)
	assert.Equal(t, "2026-03-02", w.Tomorrow)
	assert.Equal(t, "00:05", w.CurrentTime)
}

func TestDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"10:00", "11:00", 60},
		{"10:00", "10:45", 45},
		{"10:00", "10:00", 0},
		{"11:00", "10:00", -60},
		{"23:00", "23:59", 59},
	}
	for _, tt := range tests {
		got, err := Duration(tt.start, tt.end)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s-%s", tt.start, tt.end)
	}
}

func TestDuration_BadFormat(t *testing.T) {
	_, err := Duration("10am", "11:00")
	assert.Error(t, err)

	_, err = Duration("10:00", "eleven")
	assert.Error(t, err)
}
