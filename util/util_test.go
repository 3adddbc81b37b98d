// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propstore/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "store.ps", "/data/store.ps"},
		{"/data", "sub/../store.ps", "/data/store.ps"},
		{"/data", "/other/store.ps", "/other/store.ps"},
		{"/data/", "./log", "/data/log"},
	}
	for _, item := range items {
		assert.Equal(t, item.expected, util.EnsureAbsolute(item.directory, item.path), "directory: %q  path: %q", item.directory, item.path)
	}
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b")
	assert.Nil(t, util.EnsureDirectory(nested), "create nested")
	info, err := os.Stat(nested)
	assert.Nil(t, err, "stat")
	assert.True(t, info.IsDir(), "not created as directory")

	assert.Nil(t, util.EnsureDirectory(nested), "existing directory")

	file := filepath.Join(dir, "file")
	assert.Nil(t, os.WriteFile(file, []byte{1}, 0600), "create file")
	assert.NotNil(t, util.EnsureDirectory(file), "file accepted as directory")
}

func TestFormatBytes(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0xff}
	expected := "blob := []byte{" +
		"\n\t0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, " +
		"\n\t0xff, " +
		"\n}"
	assert.Equal(t, expected, util.FormatBytes("blob", data), "formatted bytes")
	assert.Equal(t, "blob := []byte{}", util.FormatBytes("blob", nil), "empty")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "3 B", util.FormatSize(3), "small")
	assert.Equal(t, "1.5 MB (1500000 bytes)", util.FormatSize(1500000), "large")
}
