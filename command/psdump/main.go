// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/mattn/go-isatty"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/guid"
	"github.com/bitmark-inc/propstore/loader"
	"github.com/bitmark-inc/propstore/propertystore"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// a save gives several events, wait this long after the last one
const settleTime = 100 * time.Millisecond

// at most one redraw per second
const (
	redrawLimit = rate.Limit(1)
	redrawBurst = 1
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "skip-names", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "no-colour", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "id", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'i'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(arguments) || len(options["id"]) > 1 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--skip-names] [--id=GUID] [--json] [--colour|--no-colour] [--watch] FILE", program)
	}

	verbose := len(options["verbose"]) > 0

	d := &dumper{
		out:  os.Stdout,
		json: len(options["json"]) > 0,
		// colour by default only on a terminal
		colour: isatty.IsTerminal(os.Stdout.Fd()),
		hex:    verbose,
	}
	if len(options["colour"]) > 0 {
		d.colour = true
	}
	if len(options["no-colour"]) > 0 || d.json {
		d.colour = false
	}

	if 1 == len(options["id"]) {
		id, err := guid.FromString(options["id"][0])
		if nil != err {
			exitwithstatus.Message("%s: invalid id: %q  error: %s", program, options["id"][0], err)
		}
		d.id = &id
	}

	readOptions := propertystore.ReadOptions{
		SelectNames: 0 == len(options["skip-names"]),
	}

	fileName := arguments[0]
	if verbose {
		fmt.Fprintf(os.Stderr, "read file: %q  select names: %t\n", fileName, readOptions.SelectNames)
	}

	level := "critical"
	if verbose {
		level = "info"
	}
	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "psdump.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	if err = propertystore.Initialise(); nil != err {
		exitwithstatus.Message("%s: propertystore setup failed with error: %s", program, err)
	}
	defer propertystore.Finalise()

	if len(options["watch"]) > 0 {
		watch(program, fileName, readOptions, d)
		return
	}

	store, err := propertystore.LoadWithOptions(fileName, readOptions)
	if nil != err {
		exitwithstatus.Message("%s: read: %q  error: %s", program, fileName, err)
	}

	err = d.dump(store)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}
}

// print the file every time it changes until a signal is received
func watch(program string, fileName string, readOptions propertystore.ReadOptions, d *dumper) {

	configuration := loader.DefaultConfiguration()
	configuration.SelectNames = readOptions.SelectNames
	configuration.KeepEmpty = readOptions.KeepEmpty

	err := loader.Initialise(configuration)
	if nil != err {
		exitwithstatus.Message("%s: loader setup failed with error: %s", program, err)
	}
	defer loader.Finalise()

	changes, err := loader.Subscribe()
	if nil != err {
		exitwithstatus.Message("%s: loader subscribe failed with error: %s", program, err)
	}

	show := func() {
		store, err := loader.Get(fileName)
		if nil != err {
			fmt.Fprintf(os.Stderr, "%s: read: %q  error: %s\n", program, fileName, err)
			return
		}
		err = d.dump(store)
		if nil != err {
			fmt.Fprintf(os.Stderr, "%s: %s\n", program, err)
		}
	}
	show()

	limiter := rate.NewLimiter(redrawLimit, redrawBurst)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case sig := <-ch:
			fmt.Fprintf(os.Stderr, "\nreceived signal: %v\n", sig)
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			settle(changes)
			time.Sleep(limiter.Reserve().Delay())
			fmt.Fprintf(d.out, "\n--- changed: %s\n", fileName)
			show()
		}
	}
}

// discard further notices until none arrive for settleTime
func settle(changes <-chan string) {
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		case <-time.After(settleTime):
			return
		}
	}
}
