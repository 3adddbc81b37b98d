// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package propertystore

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/variant"
)

// the tag at the start of every file
// exact match is required
var magic = []byte{'P', 'S', '0', '1'}

// limit initial allocation from an untrusted count
const maximumPreallocate = 1024

// ReadOptions - how a file is decoded
type ReadOptions struct {
	// false: skip object and property names without allocating them
	SelectNames bool

	// keep objects without properties and accept a zero object count,
	// as needed by an editor
	KeepEmpty bool
}

// Reader - decodes one store from a stream
type Reader struct {
	name    string
	closer  io.Closer // nil if the stream is not owned
	decoder *variant.Decoder
	options ReadOptions
}

// OpenReader - open a file and check its format tag
func OpenReader(path string, options ReadOptions) (*Reader, error) {
	h, err := OpenHandle(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(fault.ErrFileNotFound, "open: %q", path)
	}
	if nil != err {
		return nil, err
	}
	r, err := newHandleReader(path, h, options)
	if nil != err {
		return nil, errors.Wrapf(err, "open: %q", path)
	}
	return r, nil
}

// NewHandleReader - read from a handle, Close will close it
//
// the handle is closed if the format tag does not match
func NewHandleReader(h Handle, options ReadOptions) (*Reader, error) {
	return newHandleReader("handle", h, options)
}

func newHandleReader(name string, h Handle, options ReadOptions) (*Reader, error) {
	size, err := h.Size()
	if nil != err {
		h.Close()
		return nil, err
	}
	if 0 == size {
		h.Close()
		return nil, fault.ErrEmptyFile
	}

	r := &Reader{
		name:    name,
		closer:  h,
		decoder: variant.NewSizedDecoder(h, size),
		options: options,
	}
	err = r.checkMagic()
	if nil != err {
		h.Close()
		return nil, err
	}
	return r, nil
}

// NewReader - read from a seekable stream that the caller closes
func NewReader(rs io.ReadSeeker, options ReadOptions) (*Reader, error) {
	d := variant.NewDecoder(rs)
	if 0 == d.Remaining() {
		return nil, fault.ErrEmptyFile
	}
	r := &Reader{
		name:    "stream",
		decoder: d,
		options: options,
	}
	err := r.checkMagic()
	if nil != err {
		return nil, err
	}
	return r, nil
}

func (r *Reader) checkMagic() error {
	tag, err := r.decoder.ReadMagic(len(magic))
	if fault.ErrTruncatedData == err {
		return fault.ErrFormatMismatch
	}
	if nil != err {
		return err
	}
	if !bytes.Equal(magic, tag) {
		debugf("%s: expected tag: %q but read: %q", r.name, magic, tag)
		return fault.ErrFormatMismatch
	}
	return nil
}

// Close - release the stream
func (r *Reader) Close() error {
	if nil == r.closer {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// ReadAll - decode every object
//
// objects without properties are dropped unless KeepEmpty is set
func (r *Reader) ReadAll() (*Store, error) {
	d := r.decoder

	count, err := d.ReadUint32()
	if nil != err {
		return nil, errors.Wrapf(err, "%s: object count", r.name)
	}
	if 0 == count && !r.options.KeepEmpty {
		return nil, fault.ErrEmptyStore
	}

	capacity := int(count)
	if count > maximumPreallocate {
		capacity = maximumPreallocate
	}
	store := &Store{
		Objects: make([]*Object, 0, capacity),
	}

	dropped := 0
	for i := uint32(0); i < count; i++ {
		o, err := r.readObject()
		if nil != err {
			errorf("%s: object: %d at offset: %d  error: %s", r.name, i, d.Offset(), err)
			return nil, errors.Wrapf(err, "%s: object: %d at offset: %d", r.name, i, d.Offset())
		}
		if 0 == len(o.Properties) && !r.options.KeepEmpty {
			dropped++
			continue
		}
		store.Objects = append(store.Objects, o)
	}

	infof("%s: read objects: %d  dropped empty: %d", r.name, len(store.Objects), dropped)
	return store, nil
}

func (r *Reader) readObject() (*Object, error) {
	d := r.decoder

	id, err := d.ReadGuid()
	if nil != err {
		return nil, err
	}
	name, err := d.ReadName(r.options.SelectNames)
	if nil != err {
		return nil, err
	}
	count, err := d.ReadUint32()
	if nil != err {
		return nil, err
	}

	capacity := int(count)
	if count > maximumPreallocate {
		capacity = maximumPreallocate
	}
	o := &Object{
		ID:         id,
		Name:       name,
		Properties: make([]*Property, 0, capacity),
	}

	for i := uint32(0); i < count; i++ {
		name, err := d.ReadName(r.options.SelectNames)
		if nil != err {
			return nil, errors.Wrapf(err, "property: %d name", i)
		}
		t, err := d.ReadType()
		if nil != err {
			return nil, errors.Wrapf(err, "property: %d type", i)
		}
		value, err := d.ReadValue(t)
		if nil != err {
			return nil, errors.Wrapf(err, "property: %d type: %d", i, t)
		}
		o.Properties = append(o.Properties, &Property{
			Name:  name,
			Value: value,
		})
	}
	return o, nil
}

// Load - read a whole file with names read or skipped
func Load(path string, selectNames bool) (*Store, error) {
	return LoadWithOptions(path, ReadOptions{SelectNames: selectNames})
}

// LoadWithOptions - read a whole file
func LoadWithOptions(path string, options ReadOptions) (*Store, error) {
	r, err := OpenReader(path, options)
	if nil != err {
		return nil, err
	}
	defer r.Close()

	store, err := r.ReadAll()
	if nil != err {
		return nil, errors.Wrapf(err, "read: %q", path)
	}
	return store, nil
}
