// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package propertystore

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propstore/fault"
)

// the package is silent until Initialise is called
var globalData struct {
	sync.RWMutex
	log *logger.L
}

// Initialise - open the "propertystore" log channel
//
// logger.Initialise must have been called first
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		return fault.ErrAlreadyInitialised
	}
	globalData.log = logger.New("propertystore")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")
	return nil
}

// Finalise - stop logging
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.log {
		return
	}
	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.log = nil
}

func debugf(format string, arguments ...interface{}) {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil != globalData.log {
		globalData.log.Debugf(format, arguments...)
	}
}

func infof(format string, arguments ...interface{}) {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil != globalData.log {
		globalData.log.Infof(format, arguments...)
	}
}

func errorf(format string, arguments ...interface{}) {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil != globalData.log {
		globalData.log.Errorf(format, arguments...)
	}
}
