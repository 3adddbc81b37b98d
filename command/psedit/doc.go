// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// psedit - edit a property storage file from the command line
//
// The file is read with empty objects kept, one command is applied
// and if anything changed the whole file is written back.
//
//   psedit --file=themes.ps add-object --name=Theme1
//   psedit --file=themes.ps add-property --id=GUID --name=Color --type=dword --value=0x00112233
//   psedit --file=themes.ps list
//
// An optional --config file (.lua or .toml) sets the data directory
// used for relative file names, the export directory and logging.
package main
