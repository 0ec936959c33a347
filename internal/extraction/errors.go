package extraction

import "errors"

var (
	ErrRemoteDisabled = errors.New("remote extraction disabled")
	ErrRemoteTimeout  = errors.New("remote extraction timed out")
	ErrRemotePanic    = errors.New("remote extraction panicked")
)
