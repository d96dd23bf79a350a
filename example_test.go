package scrambler_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/scrambler"
)

// ExampleEngine_Encode shows the concrete behaviour of each operator family.
func ExampleEngine_Encode() {
	eng := scrambler.New()
	ctx := context.Background()

	for _, c := range []struct{ msg, cmds string }{
		{"BALL", "S0"},
		{"TOPS", "R"},
		{"TRAIN", "R2"},
		{"HOPED", "D2"},
		{"SAUCE", "T0,3"},
		{"BACKHAND", "T(4)0,2"},
	} {
		out, err := eng.Encode(ctx, c.msg, c.cmds)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> %s -> %s\n", c.msg, c.cmds, out)
	}

	// Output:
	// BALL -> S0 -> CALL
	// TOPS -> R -> STOP
	// TRAIN -> R2 -> INTRA
	// HOPED -> D2 -> HOPPED
	// SAUCE -> T0,3 -> CAUSE
	// BACKHAND -> T(4)0,2 -> HACKBAND
}

// ExampleEngine_Decode demonstrates a full round trip through a mixed command line.
func ExampleEngine_Decode() {
	eng := scrambler.New()
	ctx := context.Background()

	const cmds = "D1,2;S0,27;R3;T(2)0,1"
	secret, err := eng.Encode(ctx, "Secret", cmds)
	if err != nil {
		log.Fatal(err)
	}
	plain, err := eng.Decode(ctx, secret, cmds)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(scrambler.ReverseOperations(cmds))
	fmt.Println(plain)

	// Output:
	// T(2)0,1 R3 S0,27 D1,2
	// Secret
}
