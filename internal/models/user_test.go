package models

import (
	"testing"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin role", RoleAdmin, true},
		{"manager role", RoleManager, true},
		{"instructor role", RoleInstructor, true},
		{"student role", RoleStudent, true},
		{"invalid role", "invalid", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestUser_HasPermission(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	manager := &User{Role: RoleManager}
	instructor := &User{Role: RoleInstructor}
	student := &User{Role: RoleStudent}

	tests := []struct {
		name     string
		user     *User
		action   string
		expected bool
	}{
		// Admin permissions - should have all permissions
		{"admin can delete user", admin, "delete_user", true},
		{"admin can manage users", admin, "manage_users", true},
		{"admin can book lesson", admin, "book_lesson", true},

		// Manager permissions - everything except user management
		{"manager cannot delete user", manager, "delete_user", false},
		{"manager cannot manage users", manager, "manage_users", false},
		{"manager can view lessons", manager, "view_lessons", true},
		{"manager can book lesson", manager, "book_lesson", true},

		// Instructor permissions - scheduling only
		{"instructor can view lessons", instructor, "view_lessons", true},
		{"instructor can book lesson", instructor, "book_lesson", true},
		{"instructor can view vehicles", instructor, "view_vehicles", true},
		{"instructor cannot manage users", instructor, "manage_users", false},

		// Student permissions - read-only
		{"student can view lessons", student, "view_lessons", true},
		{"student can view vehicles", student, "view_vehicles", true},
		{"student cannot book lesson", student, "book_lesson", false},
		{"student cannot manage users", student, "manage_users", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.user.HasPermission(tt.action)
			if result != tt.expected {
				t.Errorf("HasPermission(%s) = %v, want %v", tt.action, result, tt.expected)
			}
		})
	}
}
