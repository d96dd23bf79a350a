package runtime_test

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scrambler/internal/runtime"
	"github.com/aretw0/scrambler/pkg/domain"
)

func TestEngine_Encode(t *testing.T) {
	engine := runtime.NewEngine()
	ctx := context.Background()

	tests := []struct {
		msg  string
		cmds string
		want string
	}{
		{"BALL", "S0", "CALL"},
		{"TOPS", "R", "STOP"},
		{"TRAIN", "R2", "INTRA"},
		{"HOPED", "D2", "HOPPED"},
		{"SAUCE", "T0,3", "CAUSE"},
		{"BACKHAND", "T(4)0,2", "HACKBAND"},
		{"TRAIN", "R2;S0,-1;D2", "HNTTRA"},
		{"KITE", "", "KITE"},
	}
	for _, tt := range tests {
		t.Run(tt.msg+"_"+tt.cmds, func(t *testing.T) {
			got, err := engine.Transform(ctx, tt.msg, tt.cmds, domain.Encode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_DecodeDispatch(t *testing.T) {
	engine := runtime.NewEngine()
	ctx := context.Background()

	t.Run("Direction Selects Variant Not Delimiter", func(t *testing.T) {
		// A ';' line still dispatches inverses when decoding.
		got, err := engine.Transform(ctx, "CALL", "S0;R", domain.Decode)
		require.NoError(t, err)
		assert.Equal(t, "ALLB", got)

		// A space line still dispatches forward operators when encoding.
		got, err = engine.Transform(ctx, "BALL", "S0 R", domain.Encode)
		require.NoError(t, err)
		assert.Equal(t, "LCAL", got)
	})

	t.Run("Inverse Per Family", func(t *testing.T) {
		tests := []struct {
			msg  string
			cmds string
			want string
		}{
			{"CALL", "S0", "BALL"},
			{"BALL", "S1,3", "BXLL"},
			{"STOP", "R", "TOPS"},
			{"INTRA", "R2", "TRAIN"},
			{"TRAIN", "R-2", "INTRA"},
			{"HOPPED", "D2", "HOPED"},
			{"HOPPPED", "D2,2", "HOPED"},
			{"CAUSE", "T0,3", "SAUCE"},
			{"HACKBAND", "T(4)0,2", "BACKHAND"},
		}
		for _, tt := range tests {
			got, err := engine.Transform(ctx, tt.msg, tt.cmds, domain.Decode)
			require.NoError(t, err, tt.cmds)
			assert.Equal(t, tt.want, got, tt.cmds)
		}
	})
}

func TestEngine_LegacyDuplicateInverse(t *testing.T) {
	ctx := context.Background()
	corrected := runtime.NewEngine()
	legacy := runtime.NewEngine(runtime.WithLegacyDuplicateInverse(true))

	got, err := corrected.Transform(ctx, "ABBBC", "D1,2", domain.Decode)
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	got, err = legacy.Transform(ctx, "ABBBC", "D1,2", domain.Decode)
	require.NoError(t, err)
	assert.Equal(t, "ABBBC", got)
}

func TestEngine_Errors(t *testing.T) {
	engine := runtime.NewEngine()
	ctx := context.Background()

	t.Run("Parse Error Surfaces Token", func(t *testing.T) {
		out, err := engine.Transform(ctx, "BALL", "S0;X9;R", domain.Encode)
		assert.Empty(t, out)
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "X9", parseErr.Token)
	})

	t.Run("Index Checked Against Current Length", func(t *testing.T) {
		// D0 makes index 4 valid for the following shift.
		got, err := engine.Transform(ctx, "BALL", "D0;S4", domain.Encode)
		require.NoError(t, err)
		assert.Equal(t, "BBALM", got)

		_, err = engine.Transform(ctx, "BALL", "S4;D0", domain.Encode)
		assert.ErrorIs(t, err, domain.ErrIndex)
		assert.Contains(t, err.Error(), "command 1 (S4)")
	})

	t.Run("Group Count Must Divide", func(t *testing.T) {
		_, err := engine.Transform(ctx, "BACKHAND", "T(3)0,1", domain.Encode)
		assert.ErrorIs(t, err, domain.ErrIndex)
	})

	t.Run("Shift Non Letter", func(t *testing.T) {
		_, err := engine.Transform(ctx, "A-B", "S1", domain.Encode)
		assert.ErrorIs(t, err, domain.ErrNotALetter)
	})
}

func TestEngine_RoundTrip(t *testing.T) {
	engine := runtime.NewEngine()
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(7, 42))

	for n := range 500 {
		msg := randomMessage(rng)
		line := randomCommands(t, rng, msg)

		encoded, err := engine.Transform(ctx, msg, line, domain.Encode)
		require.NoError(t, err, "case %d: %q %q", n, msg, line)

		decoded, err := engine.Transform(ctx, encoded, runtime.ReverseOperations(line), domain.Decode)
		require.NoError(t, err, "case %d: %q %q", n, msg, line)
		require.Equal(t, msg, decoded, "case %d: commands %q", n, line)
	}
}

func TestEngine_RoundTripIntegerLimits(t *testing.T) {
	engine := runtime.NewEngine()
	ctx := context.Background()

	for _, line := range []string{
		"S0,9223372036854775807",
		"S3,-9223372036854775808",
		"R9223372036854775807;R-9223372036854775808",
		"S1,-9223372036854775808;R-9223372036854775808;T(2)0,1;S0,9223372036854775807",
	} {
		encoded, err := engine.Transform(ctx, "Zebras", line, domain.Encode)
		require.NoError(t, err, line)

		decoded, err := engine.Transform(ctx, encoded, runtime.ReverseOperations(line), domain.Decode)
		require.NoError(t, err, line)
		assert.Equal(t, "Zebras", decoded, line)
	}

	_, err := engine.Transform(ctx, "AB", "D0,9223372036854775807", domain.Encode)
	assert.ErrorIs(t, err, domain.ErrIndex)
}

func randomMessage(rng *rand.Rand) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 1+rng.IntN(12))
	for i := range b {
		b[i] = letters[rng.IntN(len(letters))]
	}
	return string(b)
}

// randomCommands builds a valid encode line for msg, tracking the message
// length as duplicates grow it.
func randomCommands(t *testing.T, rng *rand.Rand, msg string) string {
	t.Helper()
	var tokens []string
	cur := msg
	for range 1 + rng.IntN(8) {
		var cmd domain.Command
		switch rng.IntN(5) {
		case 0:
			cmd = domain.Shift{Index: rng.IntN(len(cur)), Delta: rng.IntN(121) - 60}
		case 1:
			cmd = domain.Rotate{Amount: rng.IntN(41) - 20}
		case 2:
			cmd = domain.Duplicate{Index: rng.IntN(len(cur)), Count: rng.IntN(4)}
		case 3:
			cmd = domain.Trade{I: rng.IntN(len(cur)), J: rng.IntN(len(cur))}
		case 4:
			var divisors []int
			for g := 1; g <= len(cur); g++ {
				if len(cur)%g == 0 {
					divisors = append(divisors, g)
				}
			}
			g := divisors[rng.IntN(len(divisors))]
			cmd = domain.Trade{Groups: g, I: rng.IntN(g), J: rng.IntN(g)}
		}
		next, err := runtime.NewEngine().Apply(context.Background(), cur, []domain.Command{cmd}, domain.Encode)
		require.NoError(t, err)
		cur = next
		tokens = append(tokens, cmd.String())
	}
	return strings.Join(tokens, ";")
}
