package db

import "errors"

// Domain-level database error sentinels.
var (
	// Term errors
	ErrTermNotFound  = errors.New("term not found")
	ErrDuplicateTerm = errors.New("term already exists")
)
