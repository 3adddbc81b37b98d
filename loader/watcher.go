// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// the operations that make a cached store stale
const staleOperations = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

type watcherProcess struct {
	log     *logger.L
	watcher *fsnotify.Watcher
}

// Run - background process to drop cache entries of changed files
func (w *watcherProcess) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Info("watcher starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.process(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	log.Info("watcher stopped")
}

func (w *watcherProcess) process(event fsnotify.Event) {
	if 0 == event.Op&staleOperations {
		return
	}

	fullPath := filepath.Clean(event.Name)

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return
	}
	if _, ok := globalData.paths[fullPath]; !ok {
		w.log.Tracef("file: %q not loaded, discard event: %s", fullPath, event.Op)
		return
	}

	w.log.Debugf("file event: %v", event)
	invalidate(fullPath)
}
