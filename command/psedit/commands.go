// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/guid"
	"github.com/bitmark-inc/propstore/propertystore"
	"github.com/bitmark-inc/propstore/util"
	"github.com/bitmark-inc/propstore/variant"
)

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	objects := m.store.Objects
	if "" != c.String("id") {
		o, err := findObject(m.store, c.String("id"))
		if nil != err {
			return err
		}
		objects = []*propertystore.Object{o}
	}

	for i, o := range objects {
		fmt.Fprintf(m.w, "%d: %s  %q\n", i, o.ID, o.Name)
		for j, p := range o.Properties {
			text := variant.Format(p.Value)
			if f, ok := p.Value.(variant.File); ok {
				text += "  " + util.FormatSize(len(f.Data))
			}
			fmt.Fprintf(m.w, "  %d: %q  %s  %s\n", j, p.Name, p.Value.Type(), text)
		}
	}
	fmt.Fprintf(m.w, "objects: %d  properties: %d\n", len(m.store.Objects), m.store.PropertyCount())
	return nil
}

func runAddObject(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}

	o := propertystore.NewObject(name)
	m.store.Add(o)
	m.save = true

	logging.log.Infof("add object: %s  name: %q", o.ID, name)
	fmt.Fprintf(m.w, "%s\n", o.ID)
	return nil
}

func runAddProperty(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	o, err := findObject(m.store, c.String("id"))
	if nil != err {
		return err
	}
	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}
	t, err := variant.ParseType(c.String("type"))
	if nil != err {
		return err
	}

	var value variant.Value
	if text := c.String("value"); "" != text {
		value, err = variant.Parse(t, text)
	} else if variant.FileType == t {
		err = ErrRequiredPath
	} else {
		value, err = variant.Zero(t)
	}
	if nil != err {
		return err
	}

	o.AddProperty(name, value)
	m.save = true

	logging.log.Infof("add property: %s  name: %q  type: %s", o.ID, name, t)
	if m.verbose {
		fmt.Fprintf(m.e, "added: %q  %s  %s\n", name, t, variant.Format(value))
	}
	return nil
}

func runSet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	o, err := findObject(m.store, c.String("id"))
	if nil != err {
		return err
	}
	index, err := selectProperty(c, o)
	if nil != err {
		return err
	}
	text := c.String("value")
	if "" == text {
		return ErrRequiredValue
	}

	p := o.Properties[index]
	t := p.Value.Type()
	if typeName := c.String("type"); "" != typeName {
		t, err = variant.ParseType(typeName)
		if nil != err {
			return err
		}
	}

	value, err := variant.Parse(t, text)
	if nil != err {
		return err
	}
	p.Value = value
	m.save = true

	logging.log.Infof("set: %s  property: %q  type: %s", o.ID, p.Name, t)
	return nil
}

func runDuplicate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	o, err := findObject(m.store, c.String("id"))
	if nil != err {
		return err
	}

	if index := c.Int("property"); index >= 0 {
		if _, err := o.DuplicateProperty(index); nil != err {
			return err
		}
	} else {
		d, err := m.store.Duplicate(o.ID)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "%s\n", d.ID)
	}
	m.save = true
	return nil
}

func runRemove(c *cli.Context) error {
	return edit(c,
		(*propertystore.Object).RemoveProperty,
		(*propertystore.Store).Remove,
	)
}

func runMoveUp(c *cli.Context) error {
	return edit(c,
		(*propertystore.Object).MovePropertyUp,
		(*propertystore.Store).MoveUp,
	)
}

func runMoveDown(c *cli.Context) error {
	return edit(c,
		(*propertystore.Object).MovePropertyDown,
		(*propertystore.Store).MoveDown,
	)
}

// apply an operation to a property if --property was given, otherwise to the object
func edit(
	c *cli.Context,
	onProperty func(*propertystore.Object, int) error,
	onObject func(*propertystore.Store, guid.GUID) error,
) error {
	m := c.App.Metadata["config"].(*metadata)

	o, err := findObject(m.store, c.String("id"))
	if nil != err {
		return err
	}

	if index := c.Int("property"); index >= 0 {
		err = onProperty(o, index)
	} else {
		err = onObject(m.store, o.ID)
	}
	if nil != err {
		return err
	}
	m.save = true
	logging.log.Infof("%s: %s  property: %d", c.Command.Name, o.ID, c.Int("property"))
	return nil
}

func runImportFile(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	o, err := findObject(m.store, c.String("id"))
	if nil != err {
		return err
	}
	path := c.String("path")
	if "" == path {
		return ErrRequiredPath
	}

	f, err := variant.ImportFile(path)
	if nil != err {
		return err
	}

	name := c.String("name")
	if "" == name {
		name = f.Name
	}
	o.AddProperty(name, f)
	m.save = true

	logging.log.Infof("import: %q  to: %s  size: %d  sha3: %s", path, o.ID, len(f.Data), f.Fingerprint())
	if m.verbose {
		fmt.Fprintf(m.e, "imported: %q  %s\n", f.Name, util.FormatSize(len(f.Data)))
	}
	return nil
}

func runExportFile(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	o, err := findObject(m.store, c.String("id"))
	if nil != err {
		return err
	}
	index, err := selectProperty(c, o)
	if nil != err {
		return err
	}

	f, ok := o.Properties[index].Value.(variant.File)
	if !ok {
		return errors.Wrapf(ErrNotFileType, "property: %q", o.Properties[index].Name)
	}

	directory := c.String("directory")
	if "" == directory {
		directory = m.config.ExportDirectory
	}

	path, err := f.Export(directory)
	if nil != err {
		return err
	}

	logging.log.Infof("export: %s  to: %q", o.ID, path)
	fmt.Fprintf(m.w, "%s\n", path)
	return nil
}

func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredName
	}
	return name, nil
}

func findObject(store *propertystore.Store, text string) (*propertystore.Object, error) {
	if "" == text {
		return nil, ErrRequiredID
	}
	id, err := guid.FromString(text)
	if nil != err {
		return nil, errors.Wrapf(err, "id: %q", text)
	}
	o := store.FindByID(id)
	if nil == o {
		return nil, errors.Wrapf(fault.ErrNotFoundObject, "id: %s", id)
	}
	return o, nil
}

// property chosen by --name or by --property
func selectProperty(c *cli.Context, o *propertystore.Object) (int, error) {
	if name := c.String("name"); "" != name {
		index := o.FindProperty(name)
		if index < 0 {
			return 0, errors.Wrapf(ErrNoProperty, "name: %q", name)
		}
		return index, nil
	}
	index := c.Int("property")
	if index < 0 || index >= len(o.Properties) {
		return 0, errors.Wrapf(fault.ErrIndexOutOfRange, "property: %d", index)
	}
	return index, nil
}
