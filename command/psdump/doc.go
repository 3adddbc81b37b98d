// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// psdump - print the contents of a property storage file
//
// Usage:
//
//   psdump [--skip-names] [--id=GUID] [--json] [--colour|--no-colour] [--watch] [--verbose] FILE
//
// Each object is listed with its id, name and properties; embedded
// files are shown by name, size and SHA3-256 fingerprint.  --watch
// prints the file again every time it changes until interrupted.
package main
