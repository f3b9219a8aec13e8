package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested identity.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a record with the same identity is stored already.
	ErrAlreadyExists = errors.New("record already exists")
)
