package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/roadwise/driveschool/internal/models"
)

func TestConnectMongo_BadURI(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://bad:uri")
	defer os.Unsetenv("MONGO_URI")

	client, err := ConnectMongo()
	if err == nil {
		t.Error("expected error for bad URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestDatabaseName(t *testing.T) {
	os.Unsetenv("MONGO_DB")
	if got := DatabaseName(); got != "driveschool" {
		t.Errorf("expected default database name, got %q", got)
	}

	os.Setenv("MONGO_DB", "other")
	defer os.Unsetenv("MONGO_DB")
	if got := DatabaseName(); got != "other" {
		t.Errorf("expected MONGO_DB override, got %q", got)
	}
}

func TestLockKey(t *testing.T) {
	key := LockKey(ResourceInstructor, "abc", "2026-09-01")
	if key != "instructor_id:abc:2026-09-01" {
		t.Errorf("unexpected lock key %q", key)
	}

	key = LockKey(ResourceVehicle, "v1", "2026-09-01")
	if key != "vehicle_id:v1:2026-09-01" {
		t.Errorf("unexpected lock key %q", key)
	}
}

func TestInsertLessons_NilCollection(t *testing.T) {
	coll := &MongoLessonCollection{}
	if err := coll.InsertLessons(context.Background(), []models.Lesson{{}}); err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestCountOverlapping_NilCollection(t *testing.T) {
	coll := &MongoLessonCollection{}
	_, err := coll.CountOverlapping(context.Background(), ResourceInstructor, "i1", "2026-09-01", "10:00", "11:00")
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestDeleteBefore_NilCollection(t *testing.T) {
	coll := &MongoLessonCollection{}
	if _, err := coll.DeleteBefore(context.Background(), "2026-08-01"); err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestVehicleCollection_NilCollection(t *testing.T) {
	coll := &MongoVehicleCollection{}
	if err := coll.InsertVehicle(context.Background(), models.Vehicle{}); err == nil {
		t.Error("expected error when collection is nil")
	}
	if _, err := coll.FindVehicles(context.Background()); err == nil {
		t.Error("expected error when collection is nil")
	}
	if err := coll.SetMaintenance(context.Background(), "id", true); err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestLockAcquire_NilCollection(t *testing.T) {
	coll := &MongoLockCollection{}
	ok, err := coll.Acquire(context.Background(), "k", time.Second)
	if err == nil {
		t.Error("expected error when collection is nil")
	}
	if ok {
		t.Error("expected acquire to fail when collection is nil")
	}
}

func TestFlagIsEnabled_NilCollection(t *testing.T) {
	coll := &MongoFlagCollection{}
	if _, err := coll.IsEnabled(context.Background(), "vehicle_management"); err == nil {
		t.Error("expected error when collection is nil")
	}
}
