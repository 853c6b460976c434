package main

import (
	"encoding/json"
	"net/http"

	"github.com/roadwise/driveschool/internal/auth"
	"github.com/roadwise/driveschool/internal/config"
	"github.com/roadwise/driveschool/internal/db"
	"github.com/roadwise/driveschool/internal/fleet"
	"github.com/roadwise/driveschool/internal/handlers"
	"github.com/roadwise/driveschool/internal/middleware"
	"github.com/roadwise/driveschool/internal/models"
	"github.com/roadwise/driveschool/internal/schedule"
	log "github.com/sirupsen/logrus"
)

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func main() {
	cfg := config.Load()
	cfg.Apply()

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	database := client.Database(db.DatabaseName())

	lessons := &db.MongoLessonCollection{Collection: database.Collection("lessons"), Client: client}
	vehicles := &db.MongoVehicleCollection{Collection: database.Collection("vehicles")}
	instructors := &db.MongoInstructorCollection{Collection: database.Collection("instructors")}
	students := &db.MongoStudentCollection{Collection: database.Collection("students")}
	categories := &db.MongoCategoryCollection{Collection: database.Collection("categories")}
	flags := &db.MongoFlagCollection{Collection: database.Collection("feature_flags")}
	locks := &db.MongoLockCollection{Collection: database.Collection("booking_locks")}
	users := &db.MongoUserCollection{Collection: database.Collection("users")}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("failed to create auth service")
	}

	engine := schedule.NewEngine(lessons, instructors, students, categories, locks)
	fleetService := fleet.NewService(vehicles, lessons)

	authHandler := handlers.NewAuthHandler(authService, users, instructors)
	lessonHandler := handlers.NewLessonHandler(engine, flags)
	vehicleHandler := handlers.NewVehicleHandler(fleetService, vehicles)

	authMw := middleware.NewAuthMiddleware(authService)
	rateMw := middleware.NewRateLimitMiddleware()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/profile", authHandler.GetProfile)
	mux.HandleFunc("/api/lessons", lessonHandler.Lessons)
	mux.HandleFunc("/api/lessons/calendar", lessonHandler.Calendar)
	mux.HandleFunc("/api/vehicles", vehicleHandler.Vehicles)
	mux.Handle("/api/vehicles/", authMw.RequireRole(models.RoleManager)(http.HandlerFunc(vehicleHandler.Maintenance)))

	handler := rateMw.RateLimit(100, 60)(authMw.Authenticate(mux))

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
