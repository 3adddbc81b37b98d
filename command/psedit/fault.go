// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/propstore/fault"
)

// common errors - keep in alphabetic order
const (
	ErrDataDirectory = fault.InvalidError("data directory is not valid")
	ErrNoProperty    = fault.NotFoundError("property not found")
	ErrNotADirectory = fault.InvalidError("not a directory")
	ErrNotFileType   = fault.InvalidError("property is not a file")
	ErrPlainFileName = fault.InvalidError("log file must be a plain file name")
	ErrRequiredFile  = fault.InvalidError("store file name is required")
	ErrRequiredID    = fault.InvalidError("object id is required")
	ErrRequiredName  = fault.InvalidError("name is required")
	ErrRequiredPath  = fault.InvalidError("path of file to import is required")
	ErrRequiredValue = fault.InvalidError("value is required")
)
