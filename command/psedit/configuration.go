// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/propstore/configuration"
	"github.com/bitmark-inc/propstore/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory   = "."
	defaultExportDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "psedit.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - settings read from the --config file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" toml:"data_directory" json:"data_directory"`
	ExportDirectory string               `gluamapper:"export_directory" toml:"export_directory" json:"export_directory"`
	Logging         logger.Configuration `gluamapper:"logging" toml:"logging" json:"logging"`
}

func defaultLogLevels() map[string]string {
	return map[string]string{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
}

// settings when there is no configuration file
//
// files are relative to the current directory and logging goes to the
// temporary directory
func defaultConfiguration() (*Configuration, error) {
	dataDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}
	return &Configuration{
		DataDirectory:   dataDirectory,
		ExportDirectory: dataDirectory,
		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}, nil
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory:   defaultDataDirectory,
		ExportDirectory: defaultExportDirectory,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.Wrapf(ErrDataDirectory, "path: %q", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.Wrapf(ErrNotADirectory, "path: %q", options.DataDirectory)
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.Wrapf(ErrPlainFileName, "file: %q", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.ExportDirectory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
