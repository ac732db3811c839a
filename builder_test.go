// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package jsontree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	assert.True(t, Null().IsNull())
	assert.True(t, Boolean(true).Bool())
	assert.False(t, Boolean(false).Bool())
	assert.Equal(t, 123.456, Number(123.456).Float64())
	assert.Equal(t, "hello world!", String("hello world!").Str())

	arr := Array(Number(1), Number(2), Number(3))
	assert.Equal(t, TypeArray, arr.Type())
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 2.0, arr.Index(1).Float64())

	obj := Object(map[string]*Value{"foo": Number(12), "bar": Number(34)})
	assert.Equal(t, TypeObject, obj.Type())
	assert.Equal(t, 12.0, obj.Key("foo").Float64())
	assert.Equal(t, []string{"bar", "foo"}, obj.Keys())
}

func TestConstructorsMatchParsedTrees(t *testing.T) {
	t.Parallel()

	built := Object(map[string]*Value{
		"a": Array(Number(1), Null()),
		"b": String("x"),
	})
	parsed, err := Parse(`{"a":[1,null],"b":"x"}`)
	require.NoError(t, err)
	assert.True(t, built.Equal(parsed))
}

func TestNilElementsBecomeNull(t *testing.T) {
	t.Parallel()

	arr := Array(Number(1), nil)
	assert.True(t, arr.Index(1).IsNull())

	obj := Object(map[string]*Value{"a": nil})
	assert.True(t, obj.Key("a").IsNull())
}

func TestObjectCopiesItsInput(t *testing.T) {
	t.Parallel()

	members := map[string]*Value{"a": Number(1)}
	obj := Object(members)
	members["b"] = Number(2)
	assert.Equal(t, 1, obj.Len())
}

func TestFromNative(t *testing.T) {
	t.Parallel()

	type testCase struct {
		label string
		input interface{}
		want  string
	}

	cases := []testCase{
		{"nil", nil, `null`},
		{"bool", true, `true`},
		{"string", "hello", `"hello"`},
		{"float64", 123.456, `123.456`},
		{"float32", float32(123.0), `123`},
		{"int", 123, `123`},
		{"int64", int64(-5), `-5`},
		{"uint32", uint32(7), `7`},
		{"slice", []interface{}{1, 2, 3}, `[1,2,3]`},
		{"map", map[string]interface{}{"foo": 12, "bar": 34}, `{"bar":34,"foo":12}`},
		{"nested", map[string]interface{}{"a": []interface{}{nil, true}}, `{"a":[null,true]}`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()
			v, err := FromNative(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.want, Render(v, Compact))
		})
	}
}

func TestFromNativePassesValuesThrough(t *testing.T) {
	t.Parallel()

	orig := Number(1)
	v, err := FromNative(orig)
	require.NoError(t, err)
	assert.Same(t, orig, v)
}

func TestFromNativeRejectsUnsupportedTypes(t *testing.T) {
	t.Parallel()

	_, err := FromNative(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot convert")

	_, err = FromNative([]interface{}{make(chan int)})
	require.Error(t, err)
}
