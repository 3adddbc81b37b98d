// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package propertystore_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/propertystore"
	"github.com/bitmark-inc/propstore/propertystore/mocks"
	"github.com/bitmark-inc/propstore/variant"
)

func TestWriteFailed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	gomock.InOrder(
		h.EXPECT().Write([]byte("PS01")).Return(4, nil).Times(1),
		h.EXPECT().Write(gomock.Any()).Return(0, errors.New("disk full")).Times(1),
		h.EXPECT().Close().Return(nil).Times(1),
	)

	w, err := propertystore.NewHandleWriter(h)
	require.Nil(t, err, "new writer")

	err = w.WriteAll(theme1())
	assert.Equal(t, fault.ErrWriteFailed, fault.Cause(err), "write error")
	assert.True(t, fault.IsErrProcess(err), "error class")
	assert.Contains(t, err.Error(), "disk full", "underlying error")

	assert.Nil(t, w.Close(), "close")
	assert.Nil(t, w.Close(), "second close")
}

func TestWriteFailedPartWay(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	written := 0
	h := mocks.NewMockHandle(ctl)
	gomock.InOrder(
		h.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			written += len(p)
			return len(p), nil
		}).Times(3),
		h.EXPECT().Write(gomock.Any()).Return(0, errors.New("device removed")).Times(1),
		h.EXPECT().Close().Return(nil).Times(1),
	)

	store := makeStore("a", "b", "c")

	w, err := propertystore.NewHandleWriter(h)
	require.Nil(t, err, "new writer")

	// tag, count and first object succeed
	err = w.WriteAll(store)
	assert.Equal(t, fault.ErrWriteFailed, fault.Cause(err), "write error")
	assert.Greater(t, written, 8, "nothing written before failure")
	assert.Nil(t, w.Close(), "close")
}

func TestShortWrite(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	gomock.InOrder(
		h.EXPECT().Write(gomock.Any()).Return(2, nil).Times(1),
		h.EXPECT().Close().Return(nil).Times(1),
	)

	_, err := propertystore.NewHandleWriter(h)
	assert.Equal(t, fault.ErrWriteFailed, fault.Cause(err), "short write")
}

func TestCloseFailed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	h.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		return len(p), nil
	}).AnyTimes()
	h.EXPECT().Close().Return(errors.New("flush failed")).Times(1)

	w, err := propertystore.NewHandleWriter(h)
	require.Nil(t, err, "new writer")
	require.Nil(t, w.WriteAll(theme1()), "write all")

	err = w.Close()
	assert.Equal(t, fault.ErrWriteFailed, fault.Cause(err), "close error")
}

func TestReaderEmptyHandle(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	gomock.InOrder(
		h.EXPECT().Size().Return(int64(0), nil).Times(1),
		h.EXPECT().Close().Return(nil).Times(1),
	)

	_, err := propertystore.NewHandleReader(h, propertystore.ReadOptions{})
	assert.Equal(t, fault.ErrEmptyFile, err, "empty handle")
}

func TestReaderSizeError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sizeError := errors.New("stat failed")

	h := mocks.NewMockHandle(ctl)
	gomock.InOrder(
		h.EXPECT().Size().Return(int64(0), sizeError).Times(1),
		h.EXPECT().Close().Return(nil).Times(1),
	)

	_, err := propertystore.NewHandleReader(h, propertystore.ReadOptions{})
	assert.Equal(t, sizeError, err, "size error")
}

func TestReaderMismatchReleasesHandle(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	gomock.InOrder(
		h.EXPECT().Size().Return(int64(8), nil).Times(1),
		h.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, "XS01"), nil
		}).Times(1),
		h.EXPECT().Close().Return(nil).Times(1),
	)

	_, err := propertystore.NewHandleReader(h, propertystore.ReadOptions{})
	assert.Equal(t, fault.ErrFormatMismatch, err, "format mismatch")
}

func TestReaderSkipSeeks(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	data := theme1Bytes
	offset := 0

	read := func(p []byte) (int, error) {
		n := copy(p, data[offset:])
		offset += n
		return n, nil
	}

	h := mocks.NewMockHandle(ctl)
	h.EXPECT().Size().Return(int64(len(data)), nil).Times(1)
	h.EXPECT().Read(gomock.Any()).DoAndReturn(read).AnyTimes()

	// object name and both property names are skipped with a relative seek
	h.EXPECT().Seek(gomock.Any(), gomock.Eq(1)).DoAndReturn(func(n int64, whence int) (int64, error) {
		offset += int(n)
		return int64(offset), nil
	}).Times(3)
	h.EXPECT().Close().Return(nil).Times(1)

	r, err := propertystore.NewHandleReader(h, propertystore.ReadOptions{SelectNames: false})
	require.Nil(t, err, "new reader")

	store, err := r.ReadAll()
	require.Nil(t, err, "read all")
	assert.Nil(t, r.Close(), "close")

	require.Equal(t, 1, len(store.Objects), "object count")
	assert.Equal(t, "", store.Objects[0].Name, "skipped name")
	assert.Equal(t, variant.Dword(0x00112233), store.Objects[0].Properties[0].Value, "first value")
	assert.Equal(t, variant.Float(1.5), store.Objects[0].Properties[1].Value, "second value")
}
