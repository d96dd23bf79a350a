/*
Package scrambler is a reversible string-transformation engine.

A message is transformed by a line of compact commands. Encoding applies the
commands left to right; decoding reverses their order and applies the inverse
of each one, so Decode(Encode(m, c), c) == m for every well-formed line.

# Command Language

	S<i>[,<k>]        shift the letter at index i forward by k (default 1)
	R[<n>]            rotate the message right by n (default 1, negative = left)
	D<i>[,<k>]        follow the character at index i with k copies (default 1)
	T[(<g>)]<i>,<j>   swap characters i and j, or groups i and j out of g equal groups

Encode lines join tokens with ';' ("S0;R2;T(4)0,2"). The decode form produced
by ReverseOperations joins the reversed tokens with single spaces.
All indices are 0-based. Shifts wrap inside the alphabet of the letter's case.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/scrambler"
	)

	func main() {
		eng := scrambler.New()
		ctx := context.Background()

		secret, err := eng.Encode(ctx, "BACKHAND", "T(4)0,2;S0")
		if err != nil {
			log.Fatal(err)
		}
		plain, _ := eng.Decode(ctx, secret, "T(4)0,2;S0")
		fmt.Println(secret, plain) // IACKBAND BACKHAND
	}

Line-oriented processing of message and command files is provided by
pkg/runner; pkg/dsl builds command lines programmatically.
*/
package scrambler
