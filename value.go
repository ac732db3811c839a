// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package jsontree

import "sort"

// Type identifies which JSON variant a Value holds.
type Type int

const (
	TypeNull Type = iota
	TypeBoolean
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// String returns the JSON name of the type.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node of an immutable JSON tree.  Exactly one variant is active,
// identified by Type.  Strings are owned copies, not views into the source
// text.  Objects are stored as key-sorted mappings: Keys, ObjectEach, and
// the printer all iterate members in the natural sort order of their keys,
// not the order they appeared in the source.  Accessors on a nil or
// mismatched-type Value return zero values rather than panicking.
type Value struct {
	kind    Type
	boolean bool
	number  float64
	text    string
	elems   []*Value
	members map[string]*Value
}

// Type returns the active variant.  A nil Value is null.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v *Value) IsNull() bool { return v == nil || v.kind == TypeNull }

// Bool returns the payload of a boolean value, or false.
func (v *Value) Bool() bool {
	if v == nil || v.kind != TypeBoolean {
		return false
	}
	return v.boolean
}

// Float64 returns the payload of a number value, or 0.
func (v *Value) Float64() float64 {
	if v == nil || v.kind != TypeNumber {
		return 0
	}
	return v.number
}

// Str returns the payload of a string value, or "".
func (v *Value) Str() string {
	if v == nil || v.kind != TypeString {
		return ""
	}
	return v.text
}

// Len returns the number of elements of an array or members of an object,
// and 0 for every other variant.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case TypeArray:
		return len(v.elems)
	case TypeObject:
		return len(v.members)
	default:
		return 0
	}
}

// Index returns the i-th element of an array value, or nil if the value is
// not an array or i is out of range.
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != TypeArray || i < 0 || i >= len(v.elems) {
		return nil
	}
	return v.elems[i]
}

// Key returns the member of an object value under the given key, or nil.
func (v *Value) Key(name string) *Value {
	if v == nil || v.kind != TypeObject {
		return nil
	}
	return v.members[name]
}

// Keys returns the keys of an object value in sorted order, or nil.
func (v *Value) Keys() []string {
	if v == nil || v.kind != TypeObject || len(v.members) == 0 {
		return nil
	}
	keys := make([]string, 0, len(v.members))
	for k := range v.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ArrayEach calls fn for each element of an array value in order.  Returning
// false from fn stops the iteration.
func (v *Value) ArrayEach(fn func(i int, elem *Value) bool) {
	if v == nil || v.kind != TypeArray {
		return
	}
	for i, elem := range v.elems {
		if !fn(i, elem) {
			return
		}
	}
}

// ObjectEach calls fn for each member of an object value in sorted key
// order.  Returning false from fn stops the iteration.
func (v *Value) ObjectEach(fn func(key string, member *Value) bool) {
	for _, k := range v.Keys() {
		if !fn(k, v.members[k]) {
			return
		}
	}
}

// Equal reports whether two trees hold the same values.  Numbers compare by
// float64 equality; objects compare by key set and member equality.
func (v *Value) Equal(o *Value) bool {
	if v.Type() != o.Type() {
		return false
	}
	switch v.Type() {
	case TypeNull:
		return true
	case TypeBoolean:
		return v.boolean == o.boolean
	case TypeNumber:
		return v.number == o.number
	case TypeString:
		return v.text == o.text
	case TypeArray:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.members) != len(o.members) {
			return false
		}
		for k, m := range v.members {
			om, ok := o.members[k]
			if !ok || !m.Equal(om) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value as compact JSON text.
func (v *Value) String() string { return Render(v, Compact) }
