package utils

import "errors"

var (
	ErrInvalidEventID = errors.New("invalid event id")
	ErrEventNotFound  = errors.New("event not found")
	ErrDatabaseError  = errors.New("database error")
)
