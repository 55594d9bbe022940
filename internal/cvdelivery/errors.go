package cvdelivery

import "errors"

var (
	ErrInvalidType   = errors.New("invalid cv type")
	ErrInvalidAction = errors.New("invalid action")
	// ErrPDFUnavailable means no PDF strategy produced output.
	ErrPDFUnavailable = errors.New("no pdf strategy succeeded")
	// ErrStoreWrite wraps object store failures on upload.
	ErrStoreWrite = errors.New("cv store write failed")
	// ErrExhausted means every strategy in the chain failed or skipped.
	ErrExhausted = errors.New("all render strategies failed")
)
