package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteRecordsLastError(t *testing.T) {
	s := New()
	failing := errors.New("sweep failed")
	s.Register(Job{
		Name:     "sweep",
		Interval: time.Hour,
		Fn:       func(ctx context.Context) error { return failing },
	})

	s.execute(context.Background(), s.jobs["sweep"])
	assert.ErrorIs(t, s.LastError("sweep"), failing)

	s.jobs["sweep"].Fn = func(ctx context.Context) error { return nil }
	s.execute(context.Background(), s.jobs["sweep"])
	assert.NoError(t, s.LastError("sweep"))
}

func TestExecuteRecoversPanic(t *testing.T) {
	s := New()
	s.Register(Job{
		Name:     "panicky",
		Interval: time.Hour,
		Fn:       func(ctx context.Context) error { panic("boom") },
	})

	s.execute(context.Background(), s.jobs["panicky"])
	err := s.LastError("panicky")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestExecuteSkipsWhileRunning(t *testing.T) {
	s := New()
	calls := 0
	s.Register(Job{
		Name:     "slow",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			calls++
			return nil
		},
	})

	js := s.jobs["slow"]
	js.mu.Lock()
	js.running = true
	js.mu.Unlock()

	s.execute(context.Background(), js)
	assert.Equal(t, 0, calls)

	js.mu.Lock()
	js.running = false
	js.mu.Unlock()

	s.execute(context.Background(), js)
	assert.Equal(t, 1, calls)
}

func TestLastErrorUnknownJob(t *testing.T) {
	s := New()
	assert.Error(t, s.LastError("nope"))
}
