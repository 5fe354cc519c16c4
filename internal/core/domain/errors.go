package domain

import "errors"

var (
	// ErrNotAuthenticated means the request carried no resolvable identity.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotAuthorized means a valid identity holds the wrong role for the operation.
	ErrNotAuthorized = errors.New("operation not permitted for role")

	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrItemNotFound    = errors.New("item not found")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidAmount       = errors.New("amount must be a positive integer")
	ErrInvalidPrice        = errors.New("price must be a positive integer")
	ErrInvalidInput        = errors.New("invalid input")
	ErrItemUnavailable     = errors.New("item is not available")
	ErrInsufficientBalance = errors.New("insufficient coin balance")

	// ErrDuplicateTransaction guards the append-only property of the ledger.
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)
