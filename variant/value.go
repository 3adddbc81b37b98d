// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package variant

import (
	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/guid"
)

// Value - a property payload, exactly one of the types below
type Value interface {
	Type() Type
	Clone() Value
	pack(buffer Packed) (Packed, error)
}

// String - text value
type String string

// Integer - signed 32 bit value
type Integer int32

// Dword - unsigned 32 bit value
type Dword uint32

// Float - single precision value
type Float float32

// IntArray - list of signed 32 bit values, may be empty
type IntArray []int32

// Guid - identifier value
type Guid guid.GUID

// File - an embedded file, Name is normally a base name only
type File struct {
	Name string
	Data []byte
}

// Type - tag for each value
func (String) Type() Type   { return StringType }
func (Integer) Type() Type  { return IntegerType }
func (Dword) Type() Type    { return DwordType }
func (Float) Type() Type    { return FloatType }
func (IntArray) Type() Type { return IntArrayType }
func (Guid) Type() Type     { return GuidType }
func (File) Type() Type     { return FileType }

// Clone - copies share no memory with the original
func (v String) Clone() Value  { return v }
func (v Integer) Clone() Value { return v }
func (v Dword) Clone() Value   { return v }
func (v Float) Clone() Value   { return v }
func (v Guid) Clone() Value    { return v }

func (v IntArray) Clone() Value {
	c := make(IntArray, len(v))
	copy(c, v)
	return c
}

func (v File) Clone() Value {
	c := File{
		Name: v.Name,
		Data: make([]byte, len(v.Data)),
	}
	copy(c.Data, v.Data)
	return c
}

// Zero - the default value for a type tag
func Zero(t Type) (Value, error) {
	switch t {
	case StringType:
		return String(""), nil
	case IntegerType:
		return Integer(0), nil
	case DwordType:
		return Dword(0), nil
	case FloatType:
		return Float(0), nil
	case IntArrayType:
		return IntArray{}, nil
	case GuidType:
		return Guid{}, nil
	case FileType:
		return File{Data: []byte{}}, nil
	}
	return nil, fault.ErrUnknownTypeTag
}
