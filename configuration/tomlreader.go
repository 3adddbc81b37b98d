// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// decode a TOML file, keys not matching any field are an error
func parseTomlFile(fileName string, config interface{}) error {
	metadata, err := toml.DecodeFile(fileName, config)
	if nil != err {
		return err
	}

	undecoded := metadata.Undecoded()
	if 0 != len(undecoded) {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New("unknown keys: " + strings.Join(keys, ", "))
	}
	return nil
}
