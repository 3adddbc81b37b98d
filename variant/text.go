// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/guid"
)

// Format - the text form of a value as shown in listings
//
//   String    as is
//   Integer   decimal
//   Dword     0x%08x
//   Float     two decimal places
//   IntArray  comma separated decimals
//   Guid      registry form
//   File      the file name
func Format(value Value) string {
	switch v := value.(type) {
	case String:
		return string(v)
	case Integer:
		return strconv.FormatInt(int64(v), 10)
	case Dword:
		return fmt.Sprintf("0x%08x", uint32(v))
	case Float:
		return fmt.Sprintf("%.2f", float32(v))
	case IntArray:
		s := make([]string, len(v))
		for i, e := range v {
			s[i] = strconv.FormatInt(int64(e), 10)
		}
		return strings.Join(s, ",")
	case Guid:
		return guid.GUID(v).String()
	case File:
		return v.Name
	}
	return ""
}

// Parse - convert text to a value of the given type
//
// Dword accepts decimal (leading zeros are still decimal) or a 0x
// prefixed hex number.  IntArray takes every run of digits, with an
// optional minus immediately before it, as an element and ignores
// all other characters, so "1 2 3", "1,2,3" and "[1;2;3]" are the
// same and "a,b" is empty.  An invalid Guid gives the zero Guid
// together with fault.ErrInvalidGuid.  For File the text is a path
// that is imported.
func Parse(t Type, text string) (Value, error) {
	switch t {

	case StringType:
		return String(text), nil

	case IntegerType:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		if nil != err {
			return nil, fault.ErrInvalidInteger
		}
		return Integer(n), nil

	case DwordType:
		n, err := parseDword(strings.TrimSpace(text))
		if nil != err {
			return nil, fault.ErrInvalidInteger
		}
		return Dword(n), nil

	case FloatType:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
		if nil != err {
			return nil, fault.ErrInvalidFloat
		}
		return Float(f), nil

	case IntArrayType:
		a, err := parseIntArray(text)
		if nil != err {
			return nil, err
		}
		return a, nil

	case GuidType:
		id, err := guid.FromString(strings.TrimSpace(text))
		if nil != err {
			return Guid(guid.Zero), err
		}
		return Guid(id), nil

	case FileType:
		f, err := ImportFile(text)
		if nil != err {
			return nil, err
		}
		return f, nil
	}
	return nil, fault.ErrUnknownTypeTag
}

// only "0x"/"0X" selects hex, there are no octal, binary or "_" forms
func parseDword(text string) (uint64, error) {
	if len(text) > 2 && '0' == text[0] && ('x' == text[1] || 'X' == text[1]) {
		return strconv.ParseUint(text[2:], 16, 32)
	}
	return strconv.ParseUint(text, 10, 32)
}

func parseIntArray(text string) (IntArray, error) {
	a := IntArray{}
	start := -1
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		digits := text[start:end]
		start = -1
		if "-" == digits {
			return nil
		}
		n, err := strconv.ParseInt(digits, 10, 32)
		if nil != err {
			return fault.ErrInvalidInteger
		}
		a = append(a, int32(n))
		return nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			if start < 0 {
				start = i
			}
		case '-' == c:
			if err := flush(i); nil != err {
				return nil, err
			}
			start = i
		default:
			if err := flush(i); nil != err {
				return nil, err
			}
		}
	}
	if err := flush(len(text)); nil != err {
		return nil, err
	}
	return a, nil
}
