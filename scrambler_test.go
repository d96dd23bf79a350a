package scrambler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scrambler"
	"github.com/aretw0/scrambler/pkg/domain"
)

func TestFacade_RoundTrip(t *testing.T) {
	eng := scrambler.New()
	ctx := context.Background()

	cases := []struct{ msg, cmds string }{
		{"BALL", "S0"},
		{"TRAIN", "R2;R-7;R0"},
		{"HOPED", "D2;D0,3;S5,-30"},
		{"BACKHAND", "T(4)0,2;T1,6;S7,100"},
		{"MixedCase", "S0,13;S4,-13;R"},
		{"A", "R5;D0,4;T(5)4,0"},
	}
	for _, c := range cases {
		secret, err := eng.Encode(ctx, c.msg, c.cmds)
		require.NoError(t, err, c.cmds)
		plain, err := eng.Decode(ctx, secret, c.cmds)
		require.NoError(t, err, c.cmds)
		assert.Equal(t, c.msg, plain, c.cmds)
	}
}

func TestFacade_Parse(t *testing.T) {
	eng := scrambler.New()

	cmds, err := eng.Parse("S3,2;R;D1;T(4)0,2")
	require.NoError(t, err)
	assert.Equal(t, []domain.Command{
		domain.Shift{Index: 3, Delta: 2},
		domain.Rotate{Amount: 1},
		domain.Duplicate{Index: 1, Count: 1},
		domain.Trade{Groups: 4, I: 0, J: 2},
	}, cmds)

	_, err = eng.Parse("S3;Z")
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestFacade_Hooks(t *testing.T) {
	var tokens []string
	eng := scrambler.New(scrambler.WithLifecycleHooks(domain.LifecycleHooks{
		OnCommandApply: func(ctx context.Context, e *domain.CommandEvent) {
			tokens = append(tokens, e.Direction.String()+":"+e.Token)
		},
	}))

	ctx := context.Background()
	out, err := eng.Encode(ctx, "TOPS", "R;S0")
	require.NoError(t, err)
	_, err = eng.Decode(ctx, out, "R;S0")
	require.NoError(t, err)

	assert.Equal(t, []string{"encode:R", "encode:S0", "decode:S0", "decode:R"}, tokens)
}

func TestFacade_LegacyDuplicateInverse(t *testing.T) {
	ctx := context.Background()
	legacy := scrambler.New(scrambler.WithLegacyDuplicateInverse(true))

	got, err := legacy.Decode(ctx, "ABBBC", "D1,2")
	require.NoError(t, err)
	assert.Equal(t, "ABBBC", got)

	got, err = scrambler.New().Decode(ctx, "ABBBC", "D1,2")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)
}
