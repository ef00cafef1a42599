package utils

import "errors"

var (
	ErrItineraryNotFound     = errors.New("itinerary not found")
	ErrPlanGenerationFailed  = errors.New("failed to generate itinerary")
	ErrUnresolvedPlace       = errors.New("place could not be resolved")
	ErrInvalidItineraryCount = errors.New("invalid itinerary count parameter")
	ErrAccountNotFound       = errors.New("account not found")
	ErrAccountNotVerified    = errors.New("account email not verified")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidVerifyToken    = errors.New("invalid or expired token")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDatabaseError         = errors.New("database error")
)
