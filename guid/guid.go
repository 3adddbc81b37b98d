// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package guid

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/bitmark-inc/propstore/fault"
)

// Length - number of bytes in a GUID
const Length = 16

// GUID - the type for an object identifier
// to get bytes value just use id[:]
type GUID [Length]byte

// Zero - the all zero GUID
var Zero GUID

// New - create a random (version 4) GUID
func New() GUID {
	return FromUUID(uuid.New())
}

// FromUUID - convert a big endian RFC 4122 UUID to the stored layout
func FromUUID(u uuid.UUID) GUID {
	var id GUID
	copy(id[:], u[:])
	swapGroups(&id)
	return id
}

// UUID - convert to a big endian RFC 4122 UUID
func (id GUID) UUID() uuid.UUID {
	swapGroups(&id)
	return uuid.UUID(id)
}

// FromString - parse the registry text form, braces are optional
func FromString(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if nil != err {
		return Zero, fault.ErrInvalidGuid
	}
	return FromUUID(u), nil
}

// FromBytes - convert and validate a byte slice to a GUID
func FromBytes(id *GUID, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidGuid
	}
	copy(id[:], buffer)
	return nil
}

// Equal - byte equality
func (id GUID) Equal(other GUID) bool {
	return bytes.Equal(id[:], other[:])
}

// IsZero - true for the all zero GUID
func (id GUID) IsZero() bool {
	return id == Zero
}

// String - registry text form for use by the fmt package (for %s)
func (id GUID) String() string {
	return id.UUID().String()
}

// GoString - for use by the fmt package (for %#v)
func (id GUID) GoString() string {
	return "<guid:" + id.String() + ">"
}

// Scan - convert a text representation to a GUID for use by the format package scan routines
func (id *GUID) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		switch {
		case c >= '0' && c <= '9':
			return true
		case c >= 'A' && c <= 'F':
			return true
		case c >= 'a' && c <= 'f':
			return true
		case '-' == c || '{' == c || '}' == c:
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if 0 == len(token) {
		return fault.ErrInvalidGuid
	}
	parsed, err := FromString(string(token))
	if nil != err {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText - convert GUID to registry text form
func (id GUID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert registry text form into a GUID
func (id *GUID) UnmarshalText(s []byte) error {
	parsed, err := FromString(string(s))
	if nil != err {
		return err
	}
	*id = parsed
	return nil
}

// reverse the first three groups, the operation is its own inverse
func swapGroups(id *GUID) {
	id[0], id[1], id[2], id[3] = id[3], id[2], id[1], id[0]
	id[4], id[5] = id[5], id[4]
	id[6], id[7] = id[7], id[6]
}
