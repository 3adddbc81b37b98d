// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package propertystore - read and write property storage files
//
// A store file is a four byte tag "PS01" followed by a counted list of
// objects, each a GUID, a name and a counted list of typed properties:
//
//   4 bytes           'P' 'S' '0' '1'
//   uint32            object count
//   per object:
//     16 bytes        object id
//     int32           name length in UTF-16 code units
//     length*2 bytes  name
//     uint32          property count
//     per property:
//       int32           name length
//       length*2 bytes  name
//       int32           type tag
//       payload         see package variant
//
// all integers are little endian.
//
// Objects without properties are written but are dropped by the
// reader, so they do not survive a save and load.  Any change to a
// store is saved by rewriting the whole file.
package propertystore
