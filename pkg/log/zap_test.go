package log

import (
	"context"
	"testing"
)

func TestRest(t *testing.T) {
	tests := []struct {
		name string
		arg  []any
		want int
	}{
		{name: "empty", arg: nil, want: 0},
		{name: "message only", arg: []any{"msg"}, want: 0},
		{name: "key value pairs", arg: []any{"msg", "provider", "gemini", "model", "flash"}, want: 4},
		{name: "dangling value", arg: []any{"failed: ", "boom"}, want: 2},
		{name: "non string first", arg: []any{42}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(rest(tt.arg)); got != tt.want {
				t.Errorf("rest() len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInit_DoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "not-a-level", Mode: "production", Encoding: "json"})
	ctx := WithRequestID(context.Background(), "req-1")
	l.Info(ctx, "hello", "k", "v")
	l.Debugf(ctx, "debug %d", 1)
	NewNop().Warn(context.Background(), "quiet")
}
