// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/propstore/fault"
)

func writeConfiguration(t *testing.T, name string, text string) (string, string) {
	directory, err := ioutil.TempDir(testingDirName, "config")
	require.Nil(t, err, "temporary directory")
	directory, err = filepath.Abs(directory)
	require.Nil(t, err, "absolute directory")

	file := filepath.Join(directory, name)
	require.Nil(t, ioutil.WriteFile(file, []byte(text), 0600), "write configuration")
	return directory, file
}

func TestGetConfigurationLua(t *testing.T) {
	directory, file := writeConfiguration(t, "psedit.conf.lua", `
local M = {}
M.data_directory = "."
M.export_directory = "exports"
M.logging = {
    size = 4096,
    count = 2,
    levels = {
        DEFAULT = "warn",
    },
}
return M
`)

	config, err := getConfiguration(file)
	require.Nil(t, err, "configuration error")

	assert.Equal(t, directory, filepath.Clean(config.DataDirectory), "data directory")
	assert.Equal(t, filepath.Join(directory, "exports"), config.ExportDirectory, "export directory")
	assert.Equal(t, filepath.Join(directory, defaultLogDirectory), config.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, config.Logging.File, "log file")
	assert.Equal(t, 4096, config.Logging.Size, "log size")
	assert.Equal(t, 2, config.Logging.Count, "log count")

	for _, d := range []string{config.ExportDirectory, config.Logging.Directory} {
		info, err := os.Stat(d)
		require.Nil(t, err, "stat: %s", d)
		assert.True(t, info.IsDir(), "not a directory: %s", d)
	}
}

func TestGetConfigurationToml(t *testing.T) {
	directory, file := writeConfiguration(t, "psedit.toml", `
data_directory = "."
export_directory = "/tmp"
`)

	config, err := getConfiguration(file)
	require.Nil(t, err, "configuration error")
	assert.Equal(t, directory, filepath.Clean(config.DataDirectory), "data directory")
	assert.Equal(t, "/tmp", config.ExportDirectory, "export directory")
}

func TestGetConfigurationErrors(t *testing.T) {
	_, file := writeConfiguration(t, "empty.toml", `data_directory = ""`)
	_, err := getConfiguration(file)
	assert.Equal(t, ErrDataDirectory, fault.Cause(err), "empty data directory")

	_, file = writeConfiguration(t, "logfile.toml", `
data_directory = "."
[logging]
file = "sub/psedit.log"
`)
	_, err = getConfiguration(file)
	assert.Equal(t, ErrPlainFileName, fault.Cause(err), "log file with directory")

	_, file = writeConfiguration(t, "psedit.yaml", "data_directory: .\n")
	_, err = getConfiguration(file)
	assert.Equal(t, fault.ErrInvalidConfiguration, fault.Cause(err), "unsupported extension")
}

func TestDefaultConfiguration(t *testing.T) {
	config, err := defaultConfiguration()
	require.Nil(t, err, "default configuration error")

	cwd, err := os.Getwd()
	require.Nil(t, err, "working directory")
	assert.Equal(t, cwd, config.DataDirectory, "data directory")
	assert.Equal(t, os.TempDir(), config.Logging.Directory, "log directory")
}
