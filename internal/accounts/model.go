// Package accounts implements the credential store: account records,
// password hashing, authentication, registration, and the password
// change/reset flows.
package accounts

import (
	"time"

	"github.com/dmitrijs2005/recordkeeper/internal/auth"
)

// Account is one stored credential record. PasswordHash and
// SecurityAnswerHash hold hex-encoded SHA-256 digests, never plaintext.
type Account struct {
	ID                 int        `json:"id"`
	Username           string     `json:"username"`
	PasswordHash       string     `json:"password_hash"`
	Role               auth.Role  `json:"role"`
	Email              string     `json:"email"`
	SecurityQuestion   string     `json:"security_question"`
	SecurityAnswerHash string     `json:"security_answer_hash"`
	CreatedAt          time.Time  `json:"created_at"`
	PasswordChangedAt  *time.Time `json:"password_changed_at,omitempty"`
	PasswordResetAt    *time.Time `json:"password_reset_at,omitempty"`
}

// Default credentials created on first run when the account store is empty.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminAnswer   = "admin"
)

// MinPasswordLength is the lower bound enforced when a password is changed.
const MinPasswordLength = 6

// SecurityQuestions is the fixed catalog offered at registration.
var SecurityQuestions = []string{
	"What was the name of your first pet?",
	"What was the name of your primary school?",
	"In what city were you born?",
	"What is the name of your best friend?",
	"What is your favourite dish?",
}

// ValidSecurityQuestion reports whether q is part of the catalog.
func ValidSecurityQuestion(q string) bool {
	for _, s := range SecurityQuestions {
		if s == q {
			return true
		}
	}
	return false
}
