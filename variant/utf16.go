// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package variant

import (
	"golang.org/x/text/encoding/unicode"
)

// little endian, never write or expect a byte order mark
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// convert to UTF-16LE, invalid UTF-8 becomes U+FFFD
func encodeUTF16(s string) ([]byte, error) {
	if 0 == len(s) {
		return []byte{}, nil
	}
	return utf16le.NewEncoder().Bytes([]byte(s))
}

// convert from UTF-16LE, unpaired surrogates become U+FFFD
func decodeUTF16(b []byte) (string, error) {
	if 0 == len(b) {
		return "", nil
	}
	s, err := utf16le.NewDecoder().Bytes(b)
	if nil != err {
		return "", err
	}
	return string(s), nil
}

// CodeUnits - length of s in UTF-16 code units
func CodeUnits(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 && r <= 0x10ffff {
			n += 2
		} else {
			n++
		}
	}
	return n
}
