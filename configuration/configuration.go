// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/propstore/fault"
)

// ParseConfigurationFile - read a configuration file into the
// structure pointed to by config, existing field values are the
// defaults
//
//   .lua   executed by gopher-lua, fields tagged `gluamapper:"name"`
//   .toml  decoded by BurntSushi/toml, fields tagged `toml:"name"`
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	s := rv.Elem()
	if s.Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	var err error
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".lua":
		err = parseLuaFile(fileName, config)
	case ".toml":
		err = parseTomlFile(fileName, config)
	default:
		return errors.Wrapf(fault.ErrInvalidConfiguration, "file: %q", fileName)
	}
	if nil != err {
		return errors.Wrapf(err, "configuration: %q", fileName)
	}
	return nil
}
