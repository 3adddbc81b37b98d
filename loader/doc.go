// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loader - cache of decoded store files
//
// Stores are cached by absolute path and read mode.  When watching is
// enabled the directory of each loaded file is watched and a cached
// store is dropped as soon as its file is written, created, renamed
// or removed, so the next Get reads the new contents.
//
// A cached store is shared by all callers and must not be modified.
package loader
