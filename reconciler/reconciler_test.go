package reconciler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingTarget struct {
	calls atomic.Int64
}

func (c *countingTarget) Reconcile(context.Context) error {
	c.calls.Add(1)
	return nil
}

func TestRunPollsUntilStopped(t *testing.T) {
	target := &countingTarget{}
	rec := NewWithInterval(5*time.Millisecond, target)

	go rec.Run()

	require.Eventually(t, func() bool {
		return target.calls.Load() >= 3
	}, time.Second, time.Millisecond)

	rec.Stop()
	after := target.calls.Load()
	time.Sleep(25 * time.Millisecond)
	require.Equal(t, after, target.calls.Load(), "no polls after Stop")
}

func TestStopIsIdempotent(t *testing.T) {
	rec := NewWithInterval(5*time.Millisecond, &countingTarget{})
	go rec.Run()

	rec.Stop()
	rec.Stop() // second call must not panic or hang
}
