package view

import "errors"

var (
	ErrUnknownKind      = errors.New("unknown collection kind")
	ErrInvalidDue       = errors.New("invalid due window")
	ErrInvalidDirection = errors.New("invalid sort direction")
)
