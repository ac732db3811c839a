// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package jsontree

import "fmt"

// Null returns the JSON null value.
func Null() *Value { return &Value{kind: TypeNull} }

// Boolean returns a JSON boolean value.
func Boolean(b bool) *Value { return &Value{kind: TypeBoolean, boolean: b} }

// Number returns a JSON number value.
func Number(f float64) *Value { return &Value{kind: TypeNumber, number: f} }

// String returns a JSON string value.
func String(s string) *Value { return &Value{kind: TypeString, text: s} }

// Array returns a JSON array of the given elements.  Nil elements become
// null.
func Array(elems ...*Value) *Value {
	v := &Value{kind: TypeArray, elems: make([]*Value, len(elems))}
	for i, e := range elems {
		if e == nil {
			e = Null()
		}
		v.elems[i] = e
	}
	return v
}

// Object returns a JSON object with the given members.  The map is copied;
// nil members become null.
func Object(members map[string]*Value) *Value {
	v := &Value{kind: TypeObject, members: make(map[string]*Value, len(members))}
	for k, m := range members {
		if m == nil {
			m = Null()
		}
		v.members[k] = m
	}
	return v
}

// FromNative converts a native Go value into a Value tree.  Supported
// inputs are nil, bool, string, the numeric types (widened to float64),
// []interface{}, map[string]interface{}, and *Value (returned as is).
// Anything else is an error.
func FromNative(x interface{}) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t, nil
	case bool:
		return Boolean(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case []interface{}:
		elems := make([]*Value, len(t))
		for i, e := range t {
			v, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return Array(elems...), nil
	case map[string]interface{}:
		members := make(map[string]*Value, len(t))
		for k, m := range t {
			v, err := FromNative(m)
			if err != nil {
				return nil, err
			}
			members[k] = v
		}
		return Object(members), nil
	default:
		return nil, fmt.Errorf("jsontree: cannot convert %T to a Value", x)
	}
}
