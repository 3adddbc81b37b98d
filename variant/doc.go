// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package variant - typed property values and their binary layout
//
// Every value is preceded on disk by its int32 type tag (written by
// the caller) and is encoded little endian:
//
//   String    int32 count of UTF-16 code units, then count*2 bytes
//   Integer   int32
//   Dword     uint32
//   Float     IEEE-754 float32
//   IntArray  int32 count, then count int32 elements
//   Guid      16 bytes copied verbatim
//   File      String file name, uint32 byte count, then the bytes
//
// No I/O is performed here; a Decoder wraps a caller supplied stream.
package variant
