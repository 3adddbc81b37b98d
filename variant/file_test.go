// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package variant_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/variant"
)

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.bin")
	data := []byte{0x00, 0xff, 0x10}
	require.Nil(t, os.WriteFile(source, data, 0600), "write source")

	f, err := variant.ImportFile(source)
	require.Nil(t, err, "import error")
	assert.Equal(t, "source.bin", f.Name, "base name only")
	assert.Equal(t, data, f.Data, "imported data")

	out := filepath.Join(dir, "out")
	require.Nil(t, os.Mkdir(out, 0700), "make output directory")

	path, err := f.Export(out)
	require.Nil(t, err, "export error")
	assert.Equal(t, filepath.Join(out, "source.bin"), path, "exported path")

	exported, err := os.ReadFile(path)
	require.Nil(t, err, "read back")
	assert.Equal(t, data, exported, "exported data")
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := variant.ImportFile(filepath.Join(dir, "missing"))
	assert.Equal(t, fault.ErrFileNotFound, err, "missing file")

	empty := filepath.Join(dir, "empty")
	require.Nil(t, os.WriteFile(empty, nil, 0600), "write empty")
	_, err = variant.ImportFile(empty)
	assert.Equal(t, fault.ErrEmptyImport, err, "empty file")

	v, err := variant.Parse(variant.FileType, empty)
	assert.Equal(t, fault.ErrEmptyImport, err, "parse of empty file")
	assert.Nil(t, v, "no value on error")
}

func TestExportUnnamed(t *testing.T) {
	dir := t.TempDir()
	f := variant.File{Data: []byte("blob")}
	path, err := f.Export(dir)
	require.Nil(t, err, "export error")
	assert.Equal(t, filepath.Join(dir, "blob-"+f.Fingerprint()[:16]), path, "generated name")
}

func TestFingerprint(t *testing.T) {
	// SHA3-256 of the empty string
	assert.Equal(t,
		"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		variant.File{}.Fingerprint(),
		"empty fingerprint")
	assert.Equal(t, 64, len(variant.File{Data: []byte{1}}.Fingerprint()), "hex length")
}
