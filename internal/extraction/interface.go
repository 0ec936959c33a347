package extraction

import (
	"context"
	"time"

	"household-calendar/internal/model"
)

// UseCase turns one chat message into event proposals. It never fails: every
// path ends in a message, a single proposal or a batch.
type UseCase interface {
	Extract(ctx context.Context, sc model.Scope, input Input) Output
}

// RemoteExtractor is a structured extraction backend, typically an LLM. now
// is the caller's local time. Any error sends the request down the
// deterministic path.
type RemoteExtractor interface {
	Extract(ctx context.Context, input Input, now time.Time) (Draft, error)
}
