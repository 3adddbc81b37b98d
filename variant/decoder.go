// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package variant

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/guid"
)

// Decoder - sequential reader of encoded values
//
// when the stream size is known every length field is checked
// against the bytes that remain before anything is allocated
type Decoder struct {
	r         io.Reader
	seeker    io.Seeker // nil if skips must read
	offset    int64     // bytes consumed so far
	remaining int64     // -1 if unknown
}

// NewDecoder - decode from a stream whose size is unknown
//
// if the stream is also an io.Seeker its size is found and skips seek
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{
		r:         r,
		remaining: -1,
	}
	if s, ok := r.(io.Seeker); ok {
		current, err := s.Seek(0, io.SeekCurrent)
		if nil != err {
			return d
		}
		end, err := s.Seek(0, io.SeekEnd)
		if nil != err {
			return d
		}
		_, err = s.Seek(current, io.SeekStart)
		if nil != err {
			return d
		}
		d.seeker = s
		d.remaining = end - current
	}
	return d
}

// NewSizedDecoder - decode from a seekable stream with size bytes remaining
func NewSizedDecoder(rs io.ReadSeeker, size int64) *Decoder {
	return &Decoder{
		r:         rs,
		seeker:    rs,
		remaining: size,
	}
}

// Offset - number of bytes consumed
func (d *Decoder) Offset() int64 {
	return d.offset
}

// Remaining - number of bytes left, -1 if unknown
func (d *Decoder) Remaining() int64 {
	return d.remaining
}

// check a length before reading it
func (d *Decoder) reserve(n int64) error {
	if n < 0 {
		return fault.ErrNegativeLength
	}
	if d.remaining >= 0 && n > d.remaining {
		return fault.ErrTruncatedData
	}
	return nil
}

func (d *Decoder) consumed(n int64) {
	d.offset += n
	if d.remaining >= 0 {
		d.remaining -= n
	}
}

// ReadBytes - read exactly n bytes
func (d *Decoder) ReadBytes(n int64) ([]byte, error) {
	err := d.reserve(n)
	if nil != err {
		return nil, err
	}
	if 0 == n {
		return []byte{}, nil
	}

	// unknown size: grow as data arrives so a bad length cannot force a huge allocation
	if d.remaining < 0 {
		var buffer bytes.Buffer
		m, err := io.CopyN(&buffer, d.r, n)
		d.consumed(m)
		if nil != err {
			return nil, truncated(err)
		}
		return buffer.Bytes(), nil
	}

	buffer := make([]byte, n)
	m, err := io.ReadFull(d.r, buffer)
	d.consumed(int64(m))
	if nil != err {
		return nil, truncated(err)
	}
	return buffer, nil
}

// Skip - advance n bytes without keeping them
func (d *Decoder) Skip(n int64) error {
	err := d.reserve(n)
	if nil != err {
		return err
	}
	if 0 == n {
		return nil
	}
	if nil != d.seeker {
		_, err := d.seeker.Seek(n, io.SeekCurrent)
		if nil != err {
			return err
		}
		d.consumed(n)
		return nil
	}
	m, err := io.CopyN(io.Discard, d.r, n)
	d.consumed(m)
	if nil != err {
		return truncated(err)
	}
	return nil
}

// ReadMagic - read a fixed length tag
func (d *Decoder) ReadMagic(n int) ([]byte, error) {
	return d.ReadBytes(int64(n))
}

// ReadUint32 - read a little endian uint32
func (d *Decoder) ReadUint32() (uint32, error) {
	b, err := d.ReadBytes(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 - read a little endian int32
func (d *Decoder) ReadInt32() (int32, error) {
	n, err := d.ReadUint32()
	return int32(n), err
}

// ReadLength - read an int32 length field, negative values are rejected
func (d *Decoder) ReadLength() (int, error) {
	n, err := d.ReadInt32()
	if nil != err {
		return 0, err
	}
	if n < 0 {
		return 0, fault.ErrNegativeLength
	}
	return int(n), nil
}

// ReadType - read a type tag, it is not validated here
func (d *Decoder) ReadType() (Type, error) {
	n, err := d.ReadInt32()
	return Type(n), err
}

// ReadGuid - read 16 bytes
func (d *Decoder) ReadGuid() (guid.GUID, error) {
	var id guid.GUID
	b, err := d.ReadBytes(guid.Length)
	if nil != err {
		return id, err
	}
	err = guid.FromBytes(&id, b)
	return id, err
}

// ReadString - read length UTF-16 code units, the length was read by the caller
func (d *Decoder) ReadString(length int) (string, error) {
	if length < 0 {
		return "", fault.ErrNegativeLength
	}
	b, err := d.ReadBytes(2 * int64(length))
	if nil != err {
		return "", err
	}
	return decodeUTF16(b)
}

// SkipString - advance past length UTF-16 code units
func (d *Decoder) SkipString(length int) error {
	if length < 0 {
		return fault.ErrNegativeLength
	}
	return d.Skip(2 * int64(length))
}

// ReadName - read a length prefixed name
//
// when selectNames is false the name bytes are skipped and "" returned
func (d *Decoder) ReadName(selectNames bool) (string, error) {
	length, err := d.ReadLength()
	if nil != err {
		return "", err
	}
	if !selectNames {
		return "", d.SkipString(length)
	}
	return d.ReadString(length)
}

// ReadValue - decode the payload for a type tag
func (d *Decoder) ReadValue(t Type) (Value, error) {
	switch t {

	case StringType:
		s, err := d.ReadName(true)
		if nil != err {
			return nil, err
		}
		return String(s), nil

	case IntegerType:
		n, err := d.ReadInt32()
		if nil != err {
			return nil, err
		}
		return Integer(n), nil

	case DwordType:
		n, err := d.ReadUint32()
		if nil != err {
			return nil, err
		}
		return Dword(n), nil

	case FloatType:
		n, err := d.ReadUint32()
		if nil != err {
			return nil, err
		}
		return Float(math.Float32frombits(n)), nil

	case IntArrayType:
		count, err := d.ReadLength()
		if nil != err {
			return nil, err
		}
		b, err := d.ReadBytes(4 * int64(count))
		if nil != err {
			return nil, err
		}
		a := make(IntArray, count)
		for i := range a {
			a[i] = int32(binary.LittleEndian.Uint32(b[4*i:]))
		}
		return a, nil

	case GuidType:
		id, err := d.ReadGuid()
		if nil != err {
			return nil, err
		}
		return Guid(id), nil

	case FileType:
		name, err := d.ReadName(true)
		if nil != err {
			return nil, err
		}
		size, err := d.ReadUint32()
		if nil != err {
			return nil, err
		}
		data, err := d.ReadBytes(int64(size))
		if nil != err {
			return nil, err
		}
		return File{Name: name, Data: data}, nil

	default:
		return nil, fault.ErrUnknownTypeTag
	}
}

// Unpack - decode one payload from a byte slice
//
// returns the value and the number of bytes used
func Unpack(t Type, buffer Packed) (Value, int, error) {
	d := NewDecoder(bytes.NewReader(buffer))
	v, err := d.ReadValue(t)
	if nil != err {
		return nil, 0, err
	}
	return v, int(d.Offset()), nil
}

// any short read is reported the same way
func truncated(err error) error {
	if io.EOF == err || io.ErrUnexpectedEOF == err {
		return fault.ErrTruncatedData
	}
	return err
}
