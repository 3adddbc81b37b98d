// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package variant

import (
	"strings"

	"github.com/bitmark-inc/propstore/fault"
)

// Type - the type tag stored in front of each property value
type Type int32

// enumerate the possible property value types
// the numeric values are part of the file format
const (
	StringType   = Type(iota) // UTF-16 text
	IntegerType  = Type(iota) // signed 32 bit
	DwordType    = Type(iota) // unsigned 32 bit
	FloatType    = Type(iota) // IEEE-754 single precision
	IntArrayType = Type(iota) // counted list of signed 32 bit
	GuidType     = Type(iota) // 16 raw bytes
	FileType     = Type(iota) // named byte blob

	// this item must be last
	InvalidType = Type(iota)
)

var typeNames = [...]string{
	StringType:   "string",
	IntegerType:  "integer",
	DwordType:    "dword",
	FloatType:    "float",
	IntArrayType: "intarray",
	GuidType:     "guid",
	FileType:     "file",
}

// Valid - true for one of the seven known tags
func (t Type) Valid() bool {
	return t >= StringType && t < InvalidType
}

// String - lower case type name
func (t Type) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return typeNames[t]
}

// ParseType - convert a type name to its tag
//
// names are case insensitive and "int", "uint32", "array" and "blob"
// are accepted as aliases
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "int", "int32":
		return IntegerType, nil
	case "uint32", "uint":
		return DwordType, nil
	case "float32", "real":
		return FloatType, nil
	case "array", "int_array", "ints":
		return IntArrayType, nil
	case "id", "uuid":
		return GuidType, nil
	case "blob":
		return FileType, nil
	}
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return InvalidType, fault.ErrInvalidTypeName
}
