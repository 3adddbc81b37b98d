// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua or TOML configuration file
//
// the file extension selects the parser.  For Lua most of base Lua is
// available such as reading files to set key data and getenv to
// extract environment supplied items; the script must return a table.
package configuration
