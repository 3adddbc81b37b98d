// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/propertystore"
)

// logging is started once per process
var logging struct {
	started bool
	log     *logger.L
}

func setupLogging(configuration logger.Configuration, verbose bool) error {
	if logging.started {
		return nil
	}
	if verbose {
		configuration.Console = true
	}
	if err := logger.Initialise(configuration); nil != err {
		return err
	}
	if err := fault.Initialise(); nil != err {
		return err
	}
	if err := propertystore.Initialise(); nil != err {
		return err
	}
	logging.log = logger.New("main")
	logging.started = true
	return nil
}

func finishLogging() {
	if !logging.started {
		return
	}
	logging.log.Info("finished")
	propertystore.Finalise()
	fault.Finalise()
	logger.Finalise()
	logging.started = false
	logging.log = nil
}
