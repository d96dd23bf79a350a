package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scrambler/internal/runtime"
	"github.com/aretw0/scrambler/pkg/domain"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	var applied []*domain.CommandEvent
	var lines []*domain.LineEvent

	hooks := domain.LifecycleHooks{
		OnCommandApply: func(ctx context.Context, e *domain.CommandEvent) {
			applied = append(applied, e)
		},
		OnLineDone: func(ctx context.Context, e *domain.LineEvent) {
			lines = append(lines, e)
		},
	}
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(hooks))

	out, err := engine.Transform(context.Background(), "TOPS", "R;S0", domain.Encode)
	require.NoError(t, err)
	assert.Equal(t, "TTOP", out)

	require.Len(t, applied, 2)
	assert.Equal(t, domain.FamilyRotate, applied[0].Family)
	assert.Equal(t, "TOPS", applied[0].Before)
	assert.Equal(t, "STOP", applied[0].After)
	assert.Equal(t, "S0", applied[1].Token)
	assert.Equal(t, domain.EventCommandApply, applied[1].Type)

	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Commands)
	assert.NoError(t, lines[0].Err)

	_, err = engine.Transform(context.Background(), "TOPS", "S9", domain.Decode)
	require.Error(t, err)
	require.Len(t, lines, 2)
	assert.True(t, errors.Is(lines[1].Err, domain.ErrIndex))
	assert.Equal(t, domain.Decode, lines[1].Direction)
}
