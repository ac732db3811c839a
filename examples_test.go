// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package jsontree_test

import (
	"fmt"
	"log"

	"github.com/xdg-go/jsontree"
)

func ExampleParse() {
	v, err := jsontree.Parse(`{"b": 1, "a": [true, null]}`)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(jsontree.Render(v, jsontree.Compact))
	// Output: {"a":[true,null],"b":1}
}

func ExampleRender_pretty() {
	v, err := jsontree.Parse(`[1, [2, 3], {}]`)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(jsontree.Render(v, jsontree.Pretty(2)))
	// Output:
	// [
	//   1,
	//   [
	//     2,
	//     3
	//   ],
	//   {}
	// ]
}

func ExampleValue_Key() {
	v, err := jsontree.Parse(`{"user": {"name": "yak", "admin": false}}`)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v.Key("user").Key("name").Str())
	// Output: yak
}
