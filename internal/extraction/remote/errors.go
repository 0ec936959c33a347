package remote

import "errors"

var (
	// ErrUnusableShape marks a response that is not a valid extraction document.
	ErrUnusableShape = errors.New("remote extraction returned an unusable shape")
	ErrEmptyMessage  = errors.New("message is empty")
)
