// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/propstore/background"
)

// forwards paths from a queue until shut down
type forwarder struct {
	queue   chan string
	started chan struct{}

	sync.Mutex
	seen    []string
	stopped bool
}

func newForwarder() *forwarder {
	return &forwarder{
		queue:   make(chan string, 4),
		started: make(chan struct{}),
	}
}

func (f *forwarder) Run(args interface{}, shutdown <-chan struct{}) {
	prefix := args.(string)
	close(f.started)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case path := <-f.queue:
			f.Lock()
			f.seen = append(f.seen, prefix+path)
			f.Unlock()
		}
	}

	f.Lock()
	f.stopped = true
	f.Unlock()
}

func (f *forwarder) result() ([]string, bool) {
	f.Lock()
	defer f.Unlock()
	return append([]string{}, f.seen...), f.stopped
}

func TestStartStop(t *testing.T) {
	one := newForwarder()
	two := newForwarder()

	p := background.Start(background.Processes{one, two}, "/data/")

	for _, f := range []*forwarder{one, two} {
		select {
		case <-f.started:
		case <-time.After(time.Second):
			require.FailNow(t, "process did not start")
		}
	}

	one.queue <- "a.ps"
	two.queue <- "b.ps"
	two.queue <- "c.ps"

	// a received path is recorded before the next select
	assert.Eventually(t, func() bool {
		return 0 == len(one.queue) && 0 == len(two.queue)
	}, time.Second, time.Millisecond, "queues not drained")

	p.Stop()

	seen, stopped := one.result()
	assert.True(t, stopped, "first process still running after Stop")
	assert.Equal(t, []string{"/data/a.ps"}, seen, "first process")

	seen, stopped = two.result()
	assert.True(t, stopped, "second process still running after Stop")
	assert.Equal(t, []string{"/data/b.ps", "/data/c.ps"}, seen, "second process")

	// a second stop must not block or panic
	p.Stop()
}

func TestStopEmpty(t *testing.T) {
	p := background.Start(background.Processes{}, nil)
	p.Stop()

	var nothing *background.T
	nothing.Stop()
}
