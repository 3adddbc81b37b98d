// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package propertystore

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/variant"
)

// Writer - encodes a store to a stream
//
// there is no recovery from a failed write, the stream is left with
// whatever was written before the failure
type Writer struct {
	name   string
	w      io.Writer
	closer io.Closer // nil if the stream is not owned
}

// CreateWriter - replace any file at path and write the format tag
func CreateWriter(path string) (*Writer, error) {
	h, err := CreateHandle(path)
	if nil != err {
		errorf("create: %q  error: %s", path, err)
		return nil, errors.Wrapf(fault.ErrCreateFailed, "create: %q: %s", path, err)
	}
	w, err := newHandleWriter(path, h)
	if nil != err {
		return nil, errors.Wrapf(err, "create: %q", path)
	}
	return w, nil
}

// NewHandleWriter - write to a handle, Close will close it
func NewHandleWriter(h Handle) (*Writer, error) {
	return newHandleWriter("handle", h)
}

func newHandleWriter(name string, h Handle) (*Writer, error) {
	w := &Writer{
		name:   name,
		w:      h,
		closer: h,
	}
	err := w.write(magic)
	if nil != err {
		h.Close()
		return nil, err
	}
	return w, nil
}

// NewWriter - write the format tag to a stream that the caller closes
func NewWriter(stream io.Writer) (*Writer, error) {
	w := &Writer{
		name: "stream",
		w:    stream,
	}
	err := w.write(magic)
	if nil != err {
		return nil, err
	}
	return w, nil
}

// WriteAll - encode every object, including those without properties
func (w *Writer) WriteAll(store *Store) error {
	if nil == store {
		return fault.ErrNilStore
	}
	if uint64(len(store.Objects)) > math.MaxUint32 {
		return fault.ErrLengthTooLarge
	}

	err := w.write(variant.AppendUint32(nil, uint32(len(store.Objects))))
	if nil != err {
		return errors.Wrapf(err, "%s: object count", w.name)
	}

	for i, o := range store.Objects {
		packed, err := packObject(o)
		if nil != err {
			return errors.Wrapf(err, "%s: object: %d", w.name, i)
		}
		err = w.write(packed)
		if nil != err {
			return errors.Wrapf(err, "%s: object: %d", w.name, i)
		}
	}

	infof("%s: wrote objects: %d", w.name, len(store.Objects))
	return nil
}

// encode one object with all of its properties
func packObject(o *Object) (variant.Packed, error) {
	if nil == o {
		return nil, fault.ErrNilObject
	}
	if uint64(len(o.Properties)) > math.MaxUint32 {
		return nil, fault.ErrLengthTooLarge
	}

	packed := append(variant.Packed{}, o.ID[:]...)
	packed, err := variant.AppendString(packed, o.Name)
	if nil != err {
		return nil, err
	}
	packed = variant.AppendUint32(packed, uint32(len(o.Properties)))

	for i, p := range o.Properties {
		if nil == p {
			return nil, errors.Wrapf(fault.ErrNilProperty, "property: %d", i)
		}
		if nil == p.Value {
			return nil, errors.Wrapf(fault.ErrNilValue, "property: %d", i)
		}
		packed, err = variant.AppendString(packed, p.Name)
		if nil != err {
			return nil, err
		}
		packed = variant.AppendType(packed, p.Value.Type())
		packed, err = variant.Pack(packed, p.Value)
		if nil != err {
			return nil, errors.Wrapf(err, "property: %d", i)
		}
	}
	return packed, nil
}

// every failure or short write is reported as ErrWriteFailed
func (w *Writer) write(b []byte) error {
	n, err := w.w.Write(b)
	if nil != err {
		errorf("%s: write error: %s", w.name, err)
		return errors.Wrapf(fault.ErrWriteFailed, "%s", err)
	}
	if n != len(b) {
		errorf("%s: short write: %d of %d bytes", w.name, n, len(b))
		return errors.Wrapf(fault.ErrWriteFailed, "%s", io.ErrShortWrite)
	}
	return nil
}

// Close - release the stream
func (w *Writer) Close() error {
	if nil == w.closer {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	if nil != err {
		return errors.Wrapf(fault.ErrWriteFailed, "close: %s", err)
	}
	return nil
}

// Save - replace the file at path with the store
func Save(path string, store *Store) error {
	w, err := CreateWriter(path)
	if nil != err {
		return err
	}

	err = w.WriteAll(store)
	if nil != err {
		w.Close()
		return errors.Wrapf(err, "save: %q", path)
	}
	return w.Close()
}
