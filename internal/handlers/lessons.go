package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/roadwise/driveschool/internal/db"
	"github.com/roadwise/driveschool/internal/middleware"
	"github.com/roadwise/driveschool/internal/models"
	"github.com/roadwise/driveschool/internal/schedule"
)

// LessonHandler handles booking admission and lesson listing requests.
type LessonHandler struct {
	engine   *schedule.Engine
	flags    db.FlagCollection
	validate *validator.Validate
	now      func() time.Time
}

// NewLessonHandler creates a new lesson handler.
func NewLessonHandler(engine *schedule.Engine, flags db.FlagCollection) *LessonHandler {
	return &LessonHandler{
		engine:   engine,
		flags:    flags,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Lessons dispatches /api/lessons: POST books, GET lists a dashboard view.
func (h *LessonHandler) Lessons(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.book(w, r)
	case http.MethodGet:
		h.listView(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// book admits a new booking. Instructor callers are pinned to their own
// instructor id regardless of what the payload says, and a disabled
// vehicle-management feature strips the vehicle reference instead of
// rejecting the request.
func (h *LessonHandler) book(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req models.BookingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if ok && claims.Role == models.RoleInstructor && claims.InstructorID != "" {
		req.InstructorID = claims.InstructorID
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.VehicleID != "" {
		enabled, err := h.flags.IsEnabled(r.Context(), models.FeatureVehicles)
		if err != nil {
			http.Error(w, "Failed to check feature flag", http.StatusInternalServerError)
			return
		}
		if !enabled {
			req.VehicleID = ""
		}
	}

	lessons, err := h.engine.Book(r.Context(), h.now(), req)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if len(lessons) == 1 {
		json.NewEncoder(w).Encode(lessons[0])
		return
	}
	json.NewEncoder(w).Encode(lessons)
}

// listView returns {recent, current, upcoming} for ?view=driving|code|exams.
func (h *LessonHandler) listView(w http.ResponseWriter, r *http.Request) {
	view := models.LessonView(r.URL.Query().Get("view"))

	buckets, err := h.engine.ListView(r.Context(), h.now(), view)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(buckets)
}

// Calendar returns the flat lesson list for ?from=&to=, both inclusive.
func (h *LessonHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	lessons, err := h.engine.ListRange(r.Context(), h.now(), from, to)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if lessons == nil {
		lessons = []models.Lesson{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lessons)
}

// writeEngineError maps engine error kinds onto HTTP statuses: reference
// misses are 404, conflicts 409, configuration problems 500, every other
// validation failure 400.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schedule.ErrInstructorNotFound),
		errors.Is(err, schedule.ErrStudentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, schedule.ErrResourceConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, schedule.ErrNoCategoryAvailable):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
