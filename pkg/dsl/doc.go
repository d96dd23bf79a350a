/*
Package dsl provides a fluent builder for scrambler command lines.

It lets callers assemble a transformation sequence with type-checked
parameters instead of hand-writing the compact token syntax, and renders the
canonical encode-form line accepted by the engine.

Example usage:

	package main

	import (
		"fmt"

		"github.com/aretw0/scrambler/pkg/dsl"
	)

	func main() {
		line, err := dsl.New().
			ShiftBy(3, 2).
			Rotate().
			Duplicate(1).
			TradeGroups(4, 0, 2).
			Build()
		if err != nil {
			panic(err)
		}
		fmt.Println(line) // S3,2;R;D1;T(4)0,2
	}
*/
package dsl
