package utils

import "errors"

var (
	ErrTripNotFound  = errors.New("trip not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidPage   = errors.New("invalid page parameter")
	ErrDatabaseError = errors.New("database error")
)
