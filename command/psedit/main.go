// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/propertystore"
	"github.com/bitmark-inc/propstore/util"
)

type metadata struct {
	file    string
	config  *Configuration
	store   *propertystore.Store
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	finishLogging()
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "psedit"
	app.Usage = "edit a property storage file"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	idFlag := cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*object id `GUID`",
	}
	propertyFlag := cli.IntFlag{
		Name:  "property, p",
		Value: -1,
		Usage: " property `INDEX` instead of the whole object",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: "*property storage `FILE`",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` (.lua or .toml)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "list objects and properties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: " only list object `GUID`",
				},
			},
			Action: runList,
		},
		{
			Name:      "add-object",
			Usage:     "add an object with a new random id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*object `NAME`",
				},
			},
			Action: runAddObject,
		},
		{
			Name:      "add-property",
			Usage:     "add a property to an object (default integer 0)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*property `NAME`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "integer",
					Usage: " value `TYPE` [string|integer|dword|float|intarray|guid|file]",
				},
				cli.StringFlag{
					Name:  "value",
					Value: "",
					Usage: " value `TEXT`, a path for file",
				},
			},
			Action: runAddProperty,
		},
		{
			Name:      "set",
			Usage:     "change the value of a property",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "+property `NAME`",
				},
				propertyFlag,
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: " new value `TYPE` [default: keep the current type]",
				},
				cli.StringFlag{
					Name:  "value",
					Value: "",
					Usage: "*value `TEXT`",
				},
			},
			Action: runSet,
		},
		{
			Name:      "duplicate",
			Usage:     "copy an object or a property",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag, propertyFlag},
			Action:    runDuplicate,
		},
		{
			Name:      "remove",
			Usage:     "delete an object or a property",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag, propertyFlag},
			Action:    runRemove,
		},
		{
			Name:      "move-up",
			Usage:     "move an object or a property one place earlier",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag, propertyFlag},
			Action:    runMoveUp,
		},
		{
			Name:      "move-down",
			Usage:     "move an object or a property one place later",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag, propertyFlag},
			Action:    runMoveDown,
		},
		{
			Name:      "import-file",
			Usage:     "add a file property from disk",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " property `NAME` [default: base name of the file]",
				},
				cli.StringFlag{
					Name:  "path",
					Value: "",
					Usage: "*`FILE` to import",
				},
			},
			Action: runImportFile,
		},
		{
			Name:      "export-file",
			Usage:     "write a file property to disk",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "+property `NAME`",
				},
				propertyFlag,
				cli.StringFlag{
					Name:  "directory, d",
					Value: "",
					Usage: " output `DIR` [default: export directory from configuration]",
				},
			},
			Action: runExportFile,
		},
		{
			Name:  "version",
			Usage: "display psedit version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and the store
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		var config *Configuration
		var err error
		if configFile := c.GlobalString("config"); "" != configFile {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", configFile)
			}
			config, err = getConfiguration(configFile)
		} else {
			config, err = defaultConfiguration()
		}
		if nil != err {
			return err
		}

		err = setupLogging(config.Logging, verbose)
		if nil != err {
			return err
		}

		name := c.GlobalString("file")
		if "" == name {
			return ErrRequiredFile
		}
		file := util.EnsureAbsolute(config.DataDirectory, name)

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		store, err := readStore(file, "add-object" == command)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			store:   store,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// write the store back if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating store file: %s\n", m.file)
			}
			err := propertystore.Save(m.file, m.store)
			if nil != err {
				fault.Criticalf("save: %q  error: %s", m.file, err)
				return err
			}
			logging.log.Infof("saved: %q  objects: %d", m.file, len(m.store.Objects))
		}
		return nil
	}

	return app
}

// load for editing: keep empty objects and accept an empty store
//
// a missing file is only allowed when creating the first object
func readStore(file string, create bool) (*propertystore.Store, error) {
	options := propertystore.ReadOptions{
		SelectNames: true,
		KeepEmpty:   true,
	}
	store, err := propertystore.LoadWithOptions(file, options)
	if fault.ErrFileNotFound == fault.Cause(err) && create {
		logging.log.Infof("new store: %q", file)
		return &propertystore.Store{}, nil
	}
	if nil != err {
		return nil, err
	}
	logging.log.Infof("loaded: %q  objects: %d", file, len(store.Objects))
	return store, nil
}
