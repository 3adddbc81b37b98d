// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package variant

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/propstore/fault"
)

// ImportFile - read a file into a File value named by its base name
func ImportFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, fault.ErrFileNotFound
	}
	if nil != err {
		return File{}, err
	}
	if 0 == len(data) {
		return File{}, fault.ErrEmptyImport
	}
	return File{
		Name: filepath.Base(path),
		Data: data,
	}, nil
}

// Export - write the blob into directory using the base of its name
//
// returns the full path of the written file
func (v File) Export(directory string) (string, error) {
	name := filepath.Base(v.Name)
	if "" == v.Name || "." == name || string(filepath.Separator) == name {
		name = "blob-" + v.Fingerprint()[:16]
	}
	path := filepath.Join(directory, name)
	err := os.WriteFile(path, v.Data, 0644)
	if nil != err {
		return "", err
	}
	return path, nil
}

// Fingerprint - hex SHA3-256 of the data
func (v File) Fingerprint() string {
	digest := sha3.Sum256(v.Data)
	return hex.EncodeToString(digest[:])
}
