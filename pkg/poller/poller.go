// Copyright 2024 The Swarmlight Authors.
// SPDX-License-Identifier: Apache-2.0

package poller

import (
	"context"
	"errors"
	"time"

	"k8s.io/klog/v2"

	"github.com/swarmlight/swarmlight/pkg/health"
	"github.com/swarmlight/swarmlight/pkg/monitor"
	"github.com/swarmlight/swarmlight/pkg/render"
)

const (
	// DefaultPollInterval is the delay between poll cycles.
	DefaultPollInterval = 10 * time.Second
	// DefaultPollTimeout bounds one retrieve-and-classify pass so a
	// hanging engine call cannot stall the loop indefinitely.
	DefaultPollTimeout = 30 * time.Second
	// DefaultSettleDelay is how long the initializing color is held
	// before the first poll.
	DefaultSettleDelay = 5 * time.Second
)

// Options adjusts the timing of a Runner. A zero PollInterval or
// PollTimeout falls back to the default; a zero SettleDelay is honored
// and skips the settle phase.
type Options struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
	SettleDelay  time.Duration
}

func (o *Options) withDefaults() {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.PollTimeout <= 0 {
		o.PollTimeout = DefaultPollTimeout
	}
	if o.SettleDelay < 0 {
		o.SettleDelay = DefaultSettleDelay
	}
}

// Runner owns the monitor-and-render lifecycle for one resource class:
// an initializing phase, then poll cycles on a fixed interval until the
// context is cancelled, then a final clear of the strip. All state is
// accessed from the single goroutine that calls Run, so no
// synchronization is needed.
type Runner struct {
	monitor  *monitor.Monitor
	renderer *render.Renderer
	class    monitor.Class
	opts     Options
}

// NewRunner builds a Runner for the given class.
func NewRunner(m *monitor.Monitor, r *render.Renderer, class monitor.Class, opts Options) *Runner {
	opts.withDefaults()
	return &Runner{
		monitor:  m,
		renderer: r,
		class:    class,
		opts:     opts,
	}
}

// Run blocks until ctx is cancelled. Cancellation at any suspension
// point, including mid-settle and the sleep between cycles, still
// reaches the final clear, so an interrupted process never leaves
// stale pixels lit. The returned error is non-nil only for failures
// that should terminate the process; a clean cancellation returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.renderer.ShowAll(health.InitializingStatus); err != nil {
		return err
	}
	if !r.sleep(ctx, r.opts.SettleDelay) {
		return r.renderer.Off()
	}

	// First cycle runs immediately, then the ticker takes over.
	if err := r.cycle(ctx); err != nil {
		return r.shutdownWith(err)
	}
	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			klog.Infof("shutting down monitor")
			return r.renderer.Off()
		case <-ticker.C:
			if err := r.cycle(ctx); err != nil {
				return r.shutdownWith(err)
			}
		}
	}
}

// cycle runs one poll-and-render pass. Classification errors are logged
// and retried next cycle; only render failures and a misconfigured
// class are fatal.
func (r *Runner) cycle(ctx context.Context) error {
	pollCtx, cancel := context.WithTimeout(ctx, r.opts.PollTimeout)
	result, err := r.monitor.Poll(pollCtx, r.class)
	cancel()
	if err != nil {
		if ctx.Err() != nil {
			// Cancelled mid-poll; the select or sleep will notice.
			return nil
		}
		var unknownState *monitor.UnknownStateError
		if errors.As(err, &unknownState) {
			klog.Errorf("poll cycle aborted, retrying next cycle: %v", err)
			return nil
		}
		return err
	}
	klog.V(2).Infof("%s: %v", r.class, result)
	return r.renderer.Render(result)
}

func (r *Runner) shutdownWith(err error) error {
	if offErr := r.renderer.Off(); offErr != nil {
		klog.Errorf("clearing strip on shutdown: %v", offErr)
	}
	return err
}

// sleep waits for d or until ctx is cancelled, reporting whether the
// full duration elapsed.
func (r *Runner) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
