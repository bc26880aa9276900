package estagiario

import "errors"

var (
	ErrNotFound     = errors.New("estagiário not found")
	ErrMissingField = errors.New("name and email are required")
	ErrEmailTaken   = errors.New("email already registered")
)
