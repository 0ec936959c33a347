package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"household-calendar/internal/extraction"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// fakeRemote returns a fixed draft, an error, panics, or blocks past any timeout.
type fakeRemote struct {
	draft extraction.Draft
	err   error
	panic bool
	block time.Duration
	calls atomic.Int32
}

func (f *fakeRemote) Extract(ctx context.Context, input extraction.Input, now time.Time) (extraction.Draft, error) {
	f.calls.Add(1)
	if f.panic {
		panic("remote exploded")
	}
	if f.block > 0 {
		time.Sleep(f.block)
	}
	return f.draft, f.err
}

// Monday 2024-01-01 10:00 at UTC+08:00.
var refNowUTC = time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC)

const refOffset = 480

func newTestUseCase(remote extraction.RemoteExtractor, cfg Config) extraction.UseCase {
	return New(&mockLogger{}, remote, cfg)
}

func input(msg string) extraction.Input {
	return extraction.Input{
		Message:         msg,
		TZOffsetMinutes: refOffset,
		Now:             refNowUTC,
	}
}
