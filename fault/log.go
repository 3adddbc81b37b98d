// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bitmark-inc/logger"
)

// channel for messages that must reach the log even during a failure
var critical struct {
	sync.Mutex
	log *logger.L
}

// Initialise - open the "PANIC" log channel
//
// logger.Initialise must have been called first
func Initialise() error {
	critical.Lock()
	defer critical.Unlock()

	if nil != critical.log {
		return ErrAlreadyInitialised
	}
	critical.log = logger.New("PANIC")
	if nil == critical.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and close the channel
func Finalise() {
	critical.Lock()
	defer critical.Unlock()

	if nil != critical.log {
		critical.log.Flush()
		critical.log = nil
	}
}

// Criticalf - log a message tagged with the caller's file and line
//
// before Initialise the message goes to stderr
func Criticalf(format string, arguments ...interface{}) {
	writeCritical(caller(2), fmt.Sprintf(format, arguments...))
}

// Panicf - Criticalf then panic with the same message
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	writeCritical(caller(2), message)
	panic(message)
}

// "file.go:123" or "?" if not known
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func writeCritical(position string, message string) {
	critical.Lock()
	defer critical.Unlock()

	if nil == critical.log {
		fmt.Fprintf(os.Stderr, "*** (%s) %s\n", position, message)
		return
	}
	critical.log.Criticalf("(%s) %s", position, message)
	critical.log.Flush()
}
