// Package auth owns the session value, its signed token, and the permission
// policy applied to engine operations. Sessions are plain values held by the
// caller; the account collection remains the source of truth.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the privilege level of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole maps arbitrary input to a known role. Unknown values coerce to
// the unprivileged role.
func ParseRole(s string) Role {
	if strings.ToLower(strings.TrimSpace(s)) == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// Session represents one authenticated caller. A nil *Session is the
// anonymous state.
type Session struct {
	ID       uuid.UUID
	Username string
	Role     Role
	Token    string
	IssuedAt time.Time
}

func NewSession(username string, role Role, token string) *Session {
	return &Session{
		ID:       uuid.New(),
		Username: username,
		Role:     role,
		Token:    token,
		IssuedAt: time.Now(),
	}
}
