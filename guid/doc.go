// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package guid - 128 bit object identifiers
//
// A GUID is held exactly as it is stored in a property storage file:
// the first three groups are little endian integers and the last
// eight bytes are in order.  The text form is the usual registry
// form:
//
//   00112233-4455-6677-8899-aabbccddeeff
//
// which is the byte sequence:
//
//   33 22 11 00  55 44  77 66  88 99 aa bb cc dd ee ff
package guid
