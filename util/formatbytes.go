// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatBytes - render data as a Go byte slice literal, eight bytes
// per line
func FormatBytes(name string, data []byte) string {
	if 0 == len(data) {
		return name + " := []byte{}"
	}
	a := strings.Split(fmt.Sprintf("% #x", data), " ")
	s := name + " := []byte{"
	n := 8
	for i := 0; i < len(a); i++ {
		n++
		if n >= 8 {
			s += "\n\t"
			n = 0
		}
		s += a[i] + ", "
	}
	return s + "\n}"
}

// FormatSize - byte count in SI units, with the exact count when rounded
//
// e.g. "512 B" or "1.5 MB (1500000 bytes)"
func FormatSize(n int) string {
	s := humanize.Bytes(uint64(n))
	if n < 1000 {
		return s
	}
	return fmt.Sprintf("%s (%d bytes)", s, n)
}
