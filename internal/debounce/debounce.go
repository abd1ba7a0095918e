// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package debounce

import (
	"context"
	"sync"
	"time"
)

// Debouncer delays a task until its input has been stable for the configured delay. There is
// never more than one pending invocation.
type Debouncer struct {
	ctx   context.Context
	delay time.Duration
	task  func(context.Context, string)

	mu         sync.Mutex
	timer      *time.Timer
	cancel     context.CancelFunc
	suppressed bool
}

// New creates a new Debouncer. Invocations of task receive a context derived from ctx that
// is canceled once a newer value is triggered.
func New(ctx context.Context, delay time.Duration, task func(context.Context, string)) *Debouncer {
	return &Debouncer{
		ctx:   ctx,
		delay: delay,
		task:  task,
	}
}

// Trigger cancels any pending invocation and schedules the task for value.
func (d *Debouncer) Trigger(value string) {
	if d.task == nil || d.delay <= 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	if d.suppressed || d.ctx.Err() != nil {
		return
	}

	runCtx, cancel := context.WithCancel(d.ctx)
	d.cancel = cancel
	d.timer = time.AfterFunc(d.delay, func() {
		d.task(runCtx, value)
	})
}

// Suppress disables scheduling while set. Enabling suppression cancels a pending invocation.
func (d *Debouncer) Suppress(suppress bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.suppressed = suppress
	if suppress {
		d.stopLocked()
	}
}

// Stop cancels the pending invocation, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
