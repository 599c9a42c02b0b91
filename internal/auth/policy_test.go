package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	admin := NewSession("root", RoleAdmin, "")
	user := NewSession("alice", RoleUser, "")

	tests := []struct {
		name    string
		session *Session
		action  Action
		want    bool
	}{
		{"anonymous cannot create", nil, ActionCreateRecords, false},
		{"anonymous cannot edit", nil, ActionEditRecords, false},
		{"user can create", user, ActionCreateRecords, true},
		{"user cannot edit", user, ActionEditRecords, false},
		{"user cannot delete", user, ActionDeleteRecords, false},
		{"user cannot import", user, ActionImportRecords, false},
		{"user cannot manage backups", user, ActionManageBackups, false},
		{"admin can create", admin, ActionCreateRecords, true},
		{"admin can edit", admin, ActionEditRecords, true},
		{"admin can delete", admin, ActionDeleteRecords, true},
		{"admin can import", admin, ActionImportRecords, true},
		{"admin can manage backups", admin, ActionManageBackups, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.session, tt.action))
		})
	}
}

func TestPredicates(t *testing.T) {
	admin := NewSession("root", RoleAdmin, "")
	user := NewSession("alice", RoleUser, "")

	assert.True(t, IsAdmin(admin))
	assert.False(t, IsAdmin(user))
	assert.False(t, IsAdmin(nil))

	assert.True(t, CanEditRecords(admin))
	assert.False(t, CanEditRecords(user))

	assert.True(t, CanCreateRecords(admin))
	assert.True(t, CanCreateRecords(user))
	assert.False(t, CanCreateRecords(nil))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleAdmin, ParseRole("  Admin "))
	assert.Equal(t, RoleUser, ParseRole("user"))
	assert.Equal(t, RoleUser, ParseRole("superuser"))
	assert.Equal(t, RoleUser, ParseRole(""))
}
