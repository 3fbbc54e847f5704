package domain

import "errors"

// Every failure this layer can produce maps to exactly one of these, so the
// controllers can translate them to HTTP statuses without string matching.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserConflict    = errors.New("user already exists")
	ErrInvalidUsername = errors.New("not correct username")
	ErrInvalidBody     = errors.New("invalid request body")
	ErrInvalidColor    = errors.New("not a valid color")

	// ErrChallengeAssembly marks a relational-consistency violation while
	// composing a challenge view. It is a server-side defect, never caller
	// input, and must not be surfaced with detail.
	ErrChallengeAssembly = errors.New("challenge does not belong to user")
)
