// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/propertystore"
)

// Get - a store read with the configured read mode
func Get(path string) (*propertystore.Store, error) {
	globalData.RLock()
	options := globalData.options
	globalData.RUnlock()

	return GetWithOptions(path, options)
}

// GetWithOptions - a store read with a specific read mode
//
// the file is only read when it is not already cached
func GetWithOptions(path string, options propertystore.ReadOptions) (*propertystore.Store, error) {
	globalData.RLock()
	if !globalData.initialised {
		globalData.RUnlock()
		return nil, fault.ErrNotInitialised
	}
	c := globalData.cache
	log := globalData.log
	globalData.RUnlock()

	fullPath, err := absolute(path)
	if nil != err {
		return nil, err
	}
	key := cacheKey(fullPath, options)

	if item, found := c.Get(key); found {
		log.Debugf("hit: %s", key)
		return item.(*propertystore.Store), nil
	}

	// watch before reading so a change during the read is not missed
	err = watch(fullPath)
	if nil != err {
		return nil, err
	}

	log.Debugf("miss: %s", key)
	store, err := propertystore.LoadWithOptions(fullPath, options)
	if nil != err {
		log.Warnf("load: %q  error: %s", fullPath, err)
		return nil, err
	}

	c.SetDefault(key, store)
	log.Infof("cached: %q  objects: %d", fullPath, len(store.Objects))

	return store, nil
}

// Invalidate - drop every cached read of a file
func Invalidate(path string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	fullPath, err := absolute(path)
	if nil != err {
		return err
	}
	invalidate(fullPath)
	return nil
}

// Subscribe - channel of absolute paths of files whose cache entries were dropped
//
// events are discarded while the channel is full, the channel is
// closed by Finalise
func Subscribe() (<-chan string, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}
	ch := make(chan string, subscriberQueueSize)
	globalData.subscribers = append(globalData.subscribers, ch)
	return ch, nil
}

// caller holds at least the read lock
func invalidate(fullPath string) {
	for _, selectNames := range []bool{false, true} {
		for _, keepEmpty := range []bool{false, true} {
			options := propertystore.ReadOptions{
				SelectNames: selectNames,
				KeepEmpty:   keepEmpty,
			}
			globalData.cache.Delete(cacheKey(fullPath, options))
		}
	}
	globalData.log.Debugf("invalidated: %q", fullPath)

	for _, ch := range globalData.subscribers {
		select {
		case ch <- fullPath:
		default:
			globalData.log.Warnf("subscriber queue full, discard: %q", fullPath)
		}
	}
}

// add the directory of a file to the watcher
func watch(fullPath string) error {
	globalData.Lock()
	defer globalData.Unlock()

	globalData.paths[fullPath] = struct{}{}

	if nil == globalData.watcher {
		return nil
	}

	directory := filepath.Dir(fullPath)
	if _, ok := globalData.directories[directory]; ok {
		return nil
	}

	err := globalData.watcher.Add(directory)
	if os.IsNotExist(err) {
		// the read will report the missing file
		return nil
	}
	if nil != err {
		globalData.log.Errorf("watch: %q  error: %s", directory, err)
		return err
	}
	globalData.directories[directory] = struct{}{}
	globalData.log.Infof("watching: %q", directory)
	return nil
}

func absolute(path string) (string, error) {
	return filepath.Abs(filepath.Clean(path))
}

func cacheKey(fullPath string, options propertystore.ReadOptions) string {
	return fmt.Sprintf("%s|names=%t|empty=%t", fullPath, options.SelectNames, options.KeepEmpty)
}
