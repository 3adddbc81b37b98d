// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// EnsureAbsolute - resolve a path relative to directory, absolute paths are only cleaned
func EnsureAbsolute(directory string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(directory, path)
}

// EnsureDirectory - create a directory (and parents) if missing
//
// an existing non-directory at path is an error
func EnsureDirectory(path string) error {
	err := os.MkdirAll(path, 0700)
	if nil == err {
		return nil
	}
	if info, statErr := os.Stat(path); nil == statErr && !info.IsDir() {
		return errors.Errorf("not a directory: %q", path)
	}
	return err
}
