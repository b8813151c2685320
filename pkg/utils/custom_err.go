package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidCountry    = errors.New("invalid country")
	ErrInvalidTripLength = errors.New("invalid trip length")
	ErrInvalidInterests  = errors.New("invalid interests")
	ErrInvalidPace       = errors.New("invalid pace")
	ErrNoPoisFound       = errors.New("no pois found for country")
	ErrProviderFailure   = errors.New("poi provider failure")
	ErrPOINotFound       = errors.New("poi not found")
	ErrCatalogReadOnly   = errors.New("poi catalog is read only")
	ErrDatabaseError     = errors.New("database error")
)
