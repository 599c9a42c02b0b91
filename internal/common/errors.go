// Package common defines shared constants and sentinel errors used across
// the engine. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Credential store errors.
	ErrorUnauthorized      = errors.New("invalid username or password")
	ErrorNotAuthenticated  = errors.New("not authenticated")
	ErrorPasswordIncorrect = errors.New("current password incorrect")
	ErrorPasswordTooShort  = errors.New("password too short")
	ErrorUsernameTaken     = errors.New("username already exists")
	ErrorEmailTaken        = errors.New("email already in use")
	ErrorUnknownQuestion   = errors.New("unknown security question")

	// Record store errors.
	ErrorDuplicateName = errors.New("customer name already exists")

	// Infrastructure errors.
	ErrorPersistence    = errors.New("persistence failure")
	ErrorExternalSource = errors.New("external source unavailable")
	ErrorInternal       = errors.New("internal error")
)
