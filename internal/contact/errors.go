package contact

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrNotFound      = errors.New("contact message not found")
)
