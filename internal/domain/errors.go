package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrDuplicate       = errors.New("duplicate entry")
	ErrInvalidReaction = errors.New("invalid reaction kind")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidStatus   = errors.New("invalid article status")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyUpdate        = errors.New("no fields to update")
)
