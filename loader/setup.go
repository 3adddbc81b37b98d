// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/propstore/background"
	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/propertystore"
)

// defaults
const (
	DefaultExpiry  = 300 // seconds
	DefaultCleanup = 600 // seconds

	subscriberQueueSize = 16
)

// Configuration - cache settings
type Configuration struct {
	Expiry      int  `gluamapper:"expiry" toml:"expiry" json:"expiry"`                   // seconds, negative: never expire
	Cleanup     int  `gluamapper:"cleanup" toml:"cleanup" json:"cleanup"`                // seconds between purges of expired items
	Watch       bool `gluamapper:"watch" toml:"watch" json:"watch"`                      // drop entries when files change
	SelectNames bool `gluamapper:"select_names" toml:"select_names" json:"select_names"` // read mode for Get
	KeepEmpty   bool `gluamapper:"keep_empty" toml:"keep_empty" json:"keep_empty"`       // read mode for Get
}

// DefaultConfiguration - cache for five minutes, watch files, read names
func DefaultConfiguration() Configuration {
	return Configuration{
		Expiry:      DefaultExpiry,
		Cleanup:     DefaultCleanup,
		Watch:       true,
		SelectNames: true,
	}
}

// globals for the cache
type loaderData struct {
	sync.RWMutex

	log *logger.L

	options propertystore.ReadOptions
	cache   *cache.Cache

	watcher     *fsnotify.Watcher
	directories map[string]struct{} // directories being watched
	paths       map[string]struct{} // files loaded at least once
	subscribers []chan string

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData loaderData

// Initialise - set up the cache and optional file watcher
//
// logger.Initialise must have been called first
func Initialise(configuration Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("loader")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log = log
	log.Info("starting…")

	expiry := cache.NoExpiration
	if configuration.Expiry > 0 {
		expiry = time.Duration(configuration.Expiry) * time.Second
	}
	cleanup := time.Duration(configuration.Cleanup) * time.Second
	if cleanup <= 0 {
		cleanup = DefaultCleanup * time.Second
	}
	globalData.cache = cache.New(expiry, cleanup)
	globalData.options = propertystore.ReadOptions{
		SelectNames: configuration.SelectNames,
		KeepEmpty:   configuration.KeepEmpty,
	}
	globalData.directories = make(map[string]struct{})
	globalData.paths = make(map[string]struct{})
	globalData.subscribers = nil

	if configuration.Watch {
		watcher, err := fsnotify.NewWatcher()
		if nil != err {
			log.Errorf("new watcher error: %s", err)
			return err
		}
		globalData.watcher = watcher

		processes := background.Processes{
			&watcherProcess{
				log:     log,
				watcher: watcher,
			},
		}
		globalData.background = background.Start(processes, nil)
	}

	log.Infof("expiry: %v  cleanup: %v  watch: %t", expiry, cleanup, configuration.Watch)

	globalData.initialised = true
	return nil
}

// Finalise - stop the watcher and empty the cache
func Finalise() error {
	globalData.Lock()
	if !globalData.initialised {
		globalData.Unlock()
		return fault.ErrNotInitialised
	}
	globalData.initialised = false
	bg := globalData.background
	watcher := globalData.watcher
	globalData.background = nil
	globalData.watcher = nil
	globalData.Unlock()

	globalData.log.Info("shutting down…")

	// the watcher process takes the read lock so stop it unlocked
	bg.Stop()
	if nil != watcher {
		watcher.Close()
	}

	globalData.Lock()
	defer globalData.Unlock()

	globalData.cache.Flush()
	for _, ch := range globalData.subscribers {
		close(ch)
	}
	globalData.subscribers = nil

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
