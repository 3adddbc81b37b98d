// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package propertystore

import (
	"github.com/bitmark-inc/propstore/fault"
	"github.com/bitmark-inc/propstore/guid"
	"github.com/bitmark-inc/propstore/variant"
)

// Store - the decoded contents of one file, objects are in file order
type Store struct {
	Objects []*Object
}

// Object - an identified, named list of properties
type Object struct {
	ID         guid.GUID
	Name       string
	Properties []*Property
}

// Property - a named value
type Property struct {
	Name  string
	Value variant.Value
}

// NewObject - create an object with a fresh random id
func NewObject(name string) *Object {
	return &Object{
		ID:         guid.New(),
		Name:       name,
		Properties: []*Property{},
	}
}

// Add - append objects to the store
func (store *Store) Add(objects ...*Object) {
	store.Objects = append(store.Objects, objects...)
}

// FindByID - first object with the given id, nil if none
//
// this is a linear search
func (store *Store) FindByID(id guid.GUID) *Object {
	i := store.indexOf(id)
	if i < 0 {
		return nil
	}
	return store.Objects[i]
}

func (store *Store) indexOf(id guid.GUID) int {
	for i, o := range store.Objects {
		if nil != o && o.ID.Equal(id) {
			return i
		}
	}
	return -1
}

// Duplicate - append a deep copy of an object under a new id
func (store *Store) Duplicate(id guid.GUID) (*Object, error) {
	o := store.FindByID(id)
	if nil == o {
		return nil, fault.ErrNotFoundObject
	}
	c := o.Clone()
	c.ID = guid.New()
	store.Objects = append(store.Objects, c)
	return c, nil
}

// Remove - delete an object
func (store *Store) Remove(id guid.GUID) error {
	i := store.indexOf(id)
	if i < 0 {
		return fault.ErrNotFoundObject
	}
	store.Objects = append(store.Objects[:i], store.Objects[i+1:]...)
	return nil
}

// MoveUp - swap an object with the one before it
//
// the first object is left in place
func (store *Store) MoveUp(id guid.GUID) error {
	i := store.indexOf(id)
	if i < 0 {
		return fault.ErrNotFoundObject
	}
	if i > 0 {
		store.Objects[i-1], store.Objects[i] = store.Objects[i], store.Objects[i-1]
	}
	return nil
}

// MoveDown - swap an object with the one after it
//
// the last object is left in place
func (store *Store) MoveDown(id guid.GUID) error {
	i := store.indexOf(id)
	if i < 0 {
		return fault.ErrNotFoundObject
	}
	if i < len(store.Objects)-1 {
		store.Objects[i+1], store.Objects[i] = store.Objects[i], store.Objects[i+1]
	}
	return nil
}

// PropertyCount - total properties over all objects, nil objects are skipped
func (store *Store) PropertyCount() int {
	n := 0
	for _, o := range store.Objects {
		if nil != o {
			n += len(o.Properties)
		}
	}
	return n
}

// Clone - deep copy keeping the same id, nil properties are dropped
func (o *Object) Clone() *Object {
	c := &Object{
		ID:         o.ID,
		Name:       o.Name,
		Properties: make([]*Property, 0, len(o.Properties)),
	}
	for _, p := range o.Properties {
		if nil != p {
			c.Properties = append(c.Properties, p.Clone())
		}
	}
	return c
}

// AddProperty - append a property, a nil value gives Integer(0)
func (o *Object) AddProperty(name string, value variant.Value) *Property {
	if nil == value {
		value = variant.Integer(0)
	}
	p := &Property{
		Name:  name,
		Value: value,
	}
	o.Properties = append(o.Properties, p)
	return p
}

// FindProperty - index of the first property with the name, -1 if none
func (o *Object) FindProperty(name string) int {
	for i, p := range o.Properties {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// DuplicateProperty - append a deep copy of a property
func (o *Object) DuplicateProperty(index int) (*Property, error) {
	if index < 0 || index >= len(o.Properties) {
		return nil, fault.ErrIndexOutOfRange
	}
	if nil == o.Properties[index] {
		return nil, fault.ErrNilProperty
	}
	c := o.Properties[index].Clone()
	o.Properties = append(o.Properties, c)
	return c, nil
}

// RemoveProperty - delete a property
func (o *Object) RemoveProperty(index int) error {
	if index < 0 || index >= len(o.Properties) {
		return fault.ErrIndexOutOfRange
	}
	o.Properties = append(o.Properties[:index], o.Properties[index+1:]...)
	return nil
}

// MovePropertyUp - swap a property with the one before it
func (o *Object) MovePropertyUp(index int) error {
	if index < 0 || index >= len(o.Properties) {
		return fault.ErrIndexOutOfRange
	}
	if index > 0 {
		o.Properties[index-1], o.Properties[index] = o.Properties[index], o.Properties[index-1]
	}
	return nil
}

// MovePropertyDown - swap a property with the one after it
func (o *Object) MovePropertyDown(index int) error {
	if index < 0 || index >= len(o.Properties) {
		return fault.ErrIndexOutOfRange
	}
	if index < len(o.Properties)-1 {
		o.Properties[index+1], o.Properties[index] = o.Properties[index], o.Properties[index+1]
	}
	return nil
}

// Clone - deep copy, nil for a nil property
func (p *Property) Clone() *Property {
	if nil == p {
		return nil
	}
	c := &Property{
		Name: p.Name,
	}
	if nil != p.Value {
		c.Value = p.Value.Clone()
	}
	return c
}
