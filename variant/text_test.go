// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/guid"
	"github.com/bitmark-inc/propstore/variant"
)

func TestFormat(t *testing.T) {
	items := []struct {
		value variant.Value
		text  string
	}{
		{variant.String("héllo"), "héllo"},
		{variant.Integer(-42), "-42"},
		{variant.Dword(0x00112233), "0x00112233"},
		{variant.Float(1.5), "1.50"},
		{variant.Float(3.14159), "3.14"},
		{variant.IntArray{1, -2, 3}, "1,-2,3"},
		{variant.IntArray{}, ""},
		{variant.Guid(guid.Zero), "00000000-0000-0000-0000-000000000000"},
		{variant.File{Name: "a.txt", Data: []byte{1}}, "a.txt"},
	}
	for _, item := range items {
		assert.Equal(t, item.text, variant.Format(item.value), "value: %#v", item.value)
	}
}

func TestParse(t *testing.T) {
	items := []struct {
		t     variant.Type
		text  string
		value variant.Value
	}{
		{variant.StringType, " as is ", variant.String(" as is ")},
		{variant.IntegerType, "-42", variant.Integer(-42)},
		{variant.DwordType, "0x00112233", variant.Dword(0x00112233)},
		{variant.DwordType, "4294967295", variant.Dword(0xffffffff)},
		{variant.DwordType, "010", variant.Dword(10)},
		{variant.DwordType, "0100", variant.Dword(100)},
		{variant.DwordType, "0X1f", variant.Dword(31)},
		{variant.DwordType, " 0xFFFFFFFF ", variant.Dword(0xffffffff)},
		{variant.FloatType, "1.5", variant.Float(1.5)},
		{variant.IntArrayType, "1,2,3", variant.IntArray{1, 2, 3}},
		{variant.IntArrayType, "[10; -20 ,x30]", variant.IntArray{10, -20, 30}},
		{variant.IntArrayType, "", variant.IntArray{}},
		{variant.IntArrayType, "a,-,b", variant.IntArray{}},
		{variant.IntArrayType, "1 2 3", variant.IntArray{1, 2, 3}},
		{variant.IntArrayType, "-1,-2,-3", variant.IntArray{-1, -2, -3}},
	}
	for _, item := range items {
		v, err := variant.Parse(item.t, item.text)
		assert.Nil(t, err, "text: %q", item.text)
		assert.Equal(t, item.value, v, "text: %q", item.text)
	}
}

func TestParseErrors(t *testing.T) {
	items := []struct {
		t    variant.Type
		text string
		err  error
	}{
		{variant.IntegerType, "forty", fault.ErrInvalidInteger},
		{variant.IntegerType, "2147483648", fault.ErrInvalidInteger},
		{variant.DwordType, "-1", fault.ErrInvalidInteger},
		{variant.DwordType, "0x100000000", fault.ErrInvalidInteger},
		{variant.DwordType, "1_000", fault.ErrInvalidInteger},
		{variant.DwordType, "0b101", fault.ErrInvalidInteger},
		{variant.DwordType, "0o17", fault.ErrInvalidInteger},
		{variant.DwordType, "0x", fault.ErrInvalidInteger},
		{variant.DwordType, "0x-1", fault.ErrInvalidInteger},
		{variant.FloatType, "one", fault.ErrInvalidFloat},
		{variant.IntArrayType, "1,99999999999", fault.ErrInvalidInteger},
		{variant.InvalidType, "1", fault.ErrUnknownTypeTag},
	}
	for _, item := range items {
		_, err := variant.Parse(item.t, item.text)
		assert.Equal(t, item.err, err, "type: %s  text: %q", item.t, item.text)
	}
}

func TestParseInvalidGuid(t *testing.T) {
	v, err := variant.Parse(variant.GuidType, "not a guid")
	assert.Equal(t, fault.ErrInvalidGuid, err, "error")
	assert.Equal(t, variant.Guid(guid.Zero), v, "zero guid expected")

	id := guid.New()
	v, err = variant.Parse(variant.GuidType, id.String())
	assert.Nil(t, err, "error")
	assert.Equal(t, variant.Guid(id), v, "parsed guid")
}
