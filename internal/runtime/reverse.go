package runtime

import (
	"slices"
	"strings"

	"github.com/aretw0/scrambler/internal/compiler"
)

// ReverseOperations turns an encode line ("S0;R2;D1") into its decode form
// ("D1 R2 S0"): the same tokens in reverse order, joined by single spaces with
// no trailing whitespace. Parameters are left untouched; inversion of each
// operator happens at dispatch time.
func ReverseOperations(cmdLine string) string {
	tokens := compiler.Split(cmdLine)
	slices.Reverse(tokens)
	return strings.Join(tokens, " ")
}
