// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package variant

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/propstore/fault"
)

// Packed - encoded values are just a byte slice
type Packed []byte

// Pack - append the encoded payload of a value
//
// the type tag is not included, use AppendType for that
func Pack(buffer Packed, value Value) (Packed, error) {
	if nil == value {
		return buffer, fault.ErrNilValue
	}
	return value.pack(buffer)
}

// AppendType - append a type tag as int32
func AppendType(buffer Packed, t Type) Packed {
	return AppendInt32(buffer, int32(t))
}

// AppendInt32 - append a little endian int32
func AppendInt32(buffer Packed, value int32) Packed {
	return AppendUint32(buffer, uint32(value))
}

// AppendUint32 - append a little endian uint32
func AppendUint32(buffer Packed, value uint32) Packed {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendString - append a string as its code unit count followed by UTF-16LE
//
// an empty string is just a zero count
func AppendString(buffer Packed, s string) (Packed, error) {
	n := CodeUnits(s)
	if n > math.MaxInt32 {
		return buffer, fault.ErrLengthTooLarge
	}
	u, err := encodeUTF16(s)
	if nil != err {
		return buffer, err
	}
	buffer = AppendInt32(buffer, int32(n))
	return append(buffer, u...), nil
}

func (v String) pack(buffer Packed) (Packed, error) {
	return AppendString(buffer, string(v))
}

func (v Integer) pack(buffer Packed) (Packed, error) {
	return AppendInt32(buffer, int32(v)), nil
}

func (v Dword) pack(buffer Packed) (Packed, error) {
	return AppendUint32(buffer, uint32(v)), nil
}

func (v Float) pack(buffer Packed) (Packed, error) {
	return AppendUint32(buffer, math.Float32bits(float32(v))), nil
}

func (v IntArray) pack(buffer Packed) (Packed, error) {
	if len(v) > math.MaxInt32 {
		return buffer, fault.ErrLengthTooLarge
	}
	buffer = AppendInt32(buffer, int32(len(v)))
	for _, e := range v {
		buffer = AppendInt32(buffer, e)
	}
	return buffer, nil
}

func (v Guid) pack(buffer Packed) (Packed, error) {
	return append(buffer, v[:]...), nil
}

func (v File) pack(buffer Packed) (Packed, error) {
	buffer, err := AppendString(buffer, v.Name)
	if nil != err {
		return buffer, err
	}
	if uint64(len(v.Data)) > math.MaxUint32 {
		return buffer, fault.ErrLengthTooLarge
	}
	buffer = AppendUint32(buffer, uint32(len(v.Data)))
	return append(buffer, v.Data...), nil
}
