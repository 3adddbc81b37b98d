// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/mgutz/ansi"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/guid"
	"github.com/bitmark-inc/propstore/propertystore"
	"github.com/bitmark-inc/propstore/util"
	"github.com/bitmark-inc/propstore/variant"
)

// blobs up to this size are shown in full with --verbose
const maximumHexDump = 64

// colours
const (
	idColour    = "cyan+b"
	nameColour  = "yellow+b"
	typeColour  = "magenta"
	valueColour = "green"
	blobColour  = "blue"
)

type dumper struct {
	out    io.Writer
	json   bool
	colour bool
	hex    bool
	id     *guid.GUID // nil for all objects
}

type jsonProperty struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Value       interface{} `json:"value"`
	Size        *int        `json:"size,omitempty"`
	Fingerprint string      `json:"fingerprint,omitempty"`
}

type jsonObject struct {
	ID         guid.GUID      `json:"id"`
	Name       string         `json:"name"`
	Properties []jsonProperty `json:"properties"`
}

func (d *dumper) dump(store *propertystore.Store) error {
	objects := store.Objects
	if nil != d.id {
		o := store.FindByID(*d.id)
		if nil == o {
			return fmt.Errorf("id: %s  error: %s", d.id, fault.ErrNotFoundObject)
		}
		objects = []*propertystore.Object{o}
	}

	if d.json {
		return d.printJson(objects)
	}

	for i, o := range objects {
		fmt.Fprintf(d.out, "object[%d]: %s  %s  properties: %d\n",
			i,
			d.paint(o.ID.String(), idColour),
			d.paint(strconv.Quote(o.Name), nameColour),
			len(o.Properties),
		)
		for j, p := range o.Properties {
			d.property(j, p)
		}
	}
	if nil == d.id {
		fmt.Fprintf(d.out, "objects: %d  properties: %d\n", len(store.Objects), store.PropertyCount())
	}
	return nil
}

func (d *dumper) property(index int, p *propertystore.Property) {
	fmt.Fprintf(d.out, "  [%d] %s  %s  %s\n",
		index,
		d.paint(strconv.Quote(p.Name), nameColour),
		d.paint(p.Value.Type().String(), typeColour),
		d.paint(variant.Format(p.Value), valueColour),
	)

	f, ok := p.Value.(variant.File)
	if !ok {
		return
	}
	fmt.Fprintf(d.out, "      size: %s  sha3: %s\n",
		util.FormatSize(len(f.Data)),
		d.paint(f.Fingerprint(), blobColour),
	)
	if d.hex && len(f.Data) <= maximumHexDump {
		fmt.Fprintf(d.out, "%s\n", util.FormatBytes("      data", f.Data))
	}
}

func (d *dumper) paint(s string, colour string) string {
	if !d.colour {
		return s
	}
	return ansi.Color(s, colour)
}

func (d *dumper) printJson(objects []*propertystore.Object) error {
	result := make([]jsonObject, len(objects))
	for i, o := range objects {
		properties := make([]jsonProperty, len(o.Properties))
		for j, p := range o.Properties {
			properties[j] = jsonValue(p)
		}
		result[i] = jsonObject{
			ID:         o.ID,
			Name:       o.Name,
			Properties: properties,
		}
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(d.out, "%s\n", b)
	return nil
}

func jsonValue(p *propertystore.Property) jsonProperty {
	jp := jsonProperty{
		Name: p.Name,
		Type: p.Value.Type().String(),
	}
	switch v := p.Value.(type) {
	case variant.String:
		jp.Value = string(v)
	case variant.Integer:
		jp.Value = int32(v)
	case variant.Dword:
		jp.Value = uint32(v)
	case variant.Float:
		// JSON has no NaN or infinity, use the text form for those
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			jp.Value = variant.Format(v)
		} else {
			jp.Value = float32(v)
		}
	case variant.IntArray:
		jp.Value = []int32(v)
	case variant.Guid:
		jp.Value = guid.GUID(v)
	case variant.File:
		size := len(v.Data)
		jp.Value = v.Name
		jp.Size = &size
		jp.Fingerprint = v.Fingerprint()
	}
	return jp
}
