// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package propertystore

import (
	"io"
	"os"
)

//go:generate mockgen -source=handle.go -destination=mocks/handle.go -package=mocks

// Handle - the byte stream under a reader or writer
type Handle interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
	Size() (int64, error)
}

type fileHandle struct {
	*os.File
}

// Size - current length of the file
func (f fileHandle) Size() (int64, error) {
	info, err := f.Stat()
	if nil != err {
		return 0, err
	}
	return info.Size(), nil
}

// OpenHandle - open an existing file for reading
func OpenHandle(path string) (Handle, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	return fileHandle{File: f}, nil
}

// CreateHandle - delete any existing file then create it exclusively for writing
func CreateHandle(path string) (Handle, error) {
	err := os.Remove(path)
	if nil != err && !os.IsNotExist(err) {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if nil != err {
		return nil, err
	}
	return fileHandle{File: f}, nil
}
