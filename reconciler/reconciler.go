// Package reconciler drives the polling side of cross-session consistency:
// a fixed-period loop that asks each ledger to pull the shared snapshot.
package reconciler

import (
	"context"
	"log"
	"sync"
	"time"
)

// Target is a ledger that can pull the shared snapshot.
type Target interface {
	Reconcile(ctx context.Context) error
}

const defaultInterval = time.Second

type Reconciler struct {
	interval time.Duration
	targets  []Target
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func New(targets ...Target) *Reconciler {
	return NewWithInterval(defaultInterval, targets...)
}

func NewWithInterval(interval time.Duration, targets ...Target) *Reconciler {
	return &Reconciler{
		interval: interval,
		targets:  targets,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run polls until Stop is called. Run as a goroutine.
func (r *Reconciler) Run() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			for _, t := range r.targets {
				if err := t.Reconcile(context.Background()); err != nil {
					log.Println("reconcile error:", err)
				}
			}
		}
	}
}

// Stop tears the loop down and waits for it to exit. Safe to call more than
// once.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done
}
