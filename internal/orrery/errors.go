package orrery

import "errors"

// Catalog validation errors. Validate wraps these with the offending entry.
var (
	ErrEmptyCatalog    = errors.New("catalog is empty")
	ErrNoCentralBody   = errors.New("catalog has no central body")
	ErrMultipleCentral = errors.New("catalog has more than one central body")
	ErrEmptyName       = errors.New("body name is empty")
	ErrDuplicateName   = errors.New("duplicate body name")
	ErrInvalidRadius   = errors.New("radius must be positive")
	ErrInvalidDistance = errors.New("orbital distance must be positive")
	ErrInvalidPeriod   = errors.New("orbital period must be positive")
	ErrInvalidColor    = errors.New("invalid display color")
)
