// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package jsontree

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToBSON converts a Value tree into the native Go types used by the MongoDB
// driver's bson package: nil, bool, float64, string, bson.A, and bson.D.
// Object members appear in the bson.D in sorted key order, preserving the
// tree's observable ordering.
func ToBSON(v *Value) interface{} {
	switch v.Type() {
	case TypeNull:
		return nil
	case TypeBoolean:
		return v.boolean
	case TypeNumber:
		return v.number
	case TypeString:
		return v.text
	case TypeArray:
		a := make(bson.A, len(v.elems))
		for i, e := range v.elems {
			a[i] = ToBSON(e)
		}
		return a
	case TypeObject:
		d := make(bson.D, 0, len(v.members))
		for _, k := range v.Keys() {
			d = append(d, bson.E{Key: k, Value: ToBSON(v.members[k])})
		}
		return d
	default:
		return nil
	}
}

// FromBSON converts driver-native data into a Value tree.  Integer types
// widen to float64, matching the JSON number model.  Duplicate keys in a
// bson.D resolve last-write-wins, the same as the parser.  Types with no
// JSON analogue are an error.
func FromBSON(x interface{}) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Boolean(t), nil
	case float64:
		return Number(t), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case string:
		return String(t), nil
	case bson.A:
		elems := make([]*Value, len(t))
		for i, e := range t {
			v, err := FromBSON(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return Array(elems...), nil
	case bson.D:
		members := make(map[string]*Value, len(t))
		for _, e := range t {
			v, err := FromBSON(e.Value)
			if err != nil {
				return nil, err
			}
			members[e.Key] = v
		}
		return Object(members), nil
	case bson.M:
		members := make(map[string]*Value, len(t))
		for k, m := range t {
			v, err := FromBSON(m)
			if err != nil {
				return nil, err
			}
			members[k] = v
		}
		return Object(members), nil
	default:
		return nil, fmt.Errorf("jsontree: no JSON analogue for %T", x)
	}
}
