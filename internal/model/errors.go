package model

import "errors"

// Common errors used across the application
var (
	// Die errors
	ErrInvalidSides = errors.New("die must have a positive number of sides")
	ErrNilGenerator = errors.New("die requires a random number generator")
	ErrInvalidCount = errors.New("roll count out of range")

	// Starship errors
	ErrStarshipNotFound = errors.New("starship not found")
	ErrNameRequired     = errors.New("name is required")
)
