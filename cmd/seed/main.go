package main

import (
	"context"
	"os"
	"time"

	"github.com/roadwise/driveschool/internal/auth"
	"github.com/roadwise/driveschool/internal/config"
	"github.com/roadwise/driveschool/internal/db"
	"github.com/roadwise/driveschool/internal/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seeds the baseline records a fresh deployment needs: licence categories,
// the vehicle-management feature flag and an admin account. Safe to run
// repeatedly; existing records are left alone.

func upsertCategory(ctx context.Context, coll *mongo.Collection, name string) {
	var existing models.Category
	err := coll.FindOne(ctx, bson.M{"name": name}).Decode(&existing)
	if err == nil {
		return
	}
	if err != mongo.ErrNoDocuments {
		log.WithError(err).WithField("category", name).Fatal("category lookup failed")
	}
	_, err = coll.InsertOne(ctx, models.Category{ID: primitive.NewObjectID(), Name: name, IsActive: true})
	if err != nil {
		log.WithError(err).WithField("category", name).Fatal("failed to seed category")
	}
	log.WithField("category", name).Info("seeded licence category")
}

func upsertFlag(ctx context.Context, coll *mongo.Collection, key string, enabled bool) {
	var existing models.FeatureFlag
	err := coll.FindOne(ctx, bson.M{"key": key}).Decode(&existing)
	if err == nil {
		return
	}
	if err != mongo.ErrNoDocuments {
		log.WithError(err).WithField("flag", key).Fatal("flag lookup failed")
	}
	flag := models.FeatureFlag{
		ID:             primitive.NewObjectID(),
		Key:            key,
		IsEnabled:      enabled,
		RolloutPercent: 100,
		UpdatedAt:      time.Now(),
	}
	if _, err := coll.InsertOne(ctx, flag); err != nil {
		log.WithError(err).WithField("flag", key).Fatal("failed to seed flag")
	}
	log.WithFields(log.Fields{"flag": key, "enabled": enabled}).Info("seeded feature flag")
}

func upsertAdmin(ctx context.Context, users *db.MongoUserCollection, authService *auth.Service) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	if _, err := users.FindUserByUsername(ctx, username); err == nil {
		return
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		log.WithError(err).Fatal("failed to hash admin password")
	}
	user := models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        username + "@localhost",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := users.InsertUser(ctx, user); err != nil {
		log.WithError(err).Fatal("failed to seed admin user")
	}
	log.WithField("username", username).Info("seeded admin user")
}

func main() {
	cfg := config.Load()
	cfg.Apply()

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	database := client.Database(db.DatabaseName())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	upsertCategory(ctx, database.Collection("categories"), "B")
	upsertCategory(ctx, database.Collection("categories"), "A1")
	upsertFlag(ctx, database.Collection("feature_flags"), models.FeatureVehicles, true)

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("failed to create auth service")
	}
	upsertAdmin(ctx, &db.MongoUserCollection{Collection: database.Collection("users")}, authService)

	log.Info("seed complete")
}
