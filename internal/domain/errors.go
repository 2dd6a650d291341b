package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUsernameTaken = "username already taken"

	// Catalog errors
	ErrMsgCardNotFound     = "card not found"
	ErrMsgPrintingNotFound = "printing not found"

	// Deck errors
	ErrMsgDeckNotFound = "deck not found"
	ErrMsgNotDeckOwner = "deck belongs to another user"

	// Import source errors
	ErrMsgImportSourceNotFound = "import source not found"

	// Admin guard errors
	ErrMsgLastAdmin = "at least one administrator must remain"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)

	// Catalog errors
	ErrCardNotFound     = errors.New(ErrMsgCardNotFound)
	ErrPrintingNotFound = errors.New(ErrMsgPrintingNotFound)

	// Deck errors
	ErrDeckNotFound = errors.New(ErrMsgDeckNotFound)
	ErrNotDeckOwner = errors.New(ErrMsgNotDeckOwner)

	// Import source errors
	ErrImportSourceNotFound = errors.New(ErrMsgImportSourceNotFound)

	// Admin guard errors
	ErrLastAdmin = errors.New(ErrMsgLastAdmin)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
