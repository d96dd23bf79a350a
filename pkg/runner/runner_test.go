package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scrambler"
	"github.com/aretw0/scrambler/pkg/domain"
	"github.com/aretw0/scrambler/pkg/runner"
)

const (
	plainFile   = "BALL\nTOPS\r\nTRAIN  \nHOPED\nBACKHAND\n"
	commandFile = "S0\nR\nR2;S0,-1\nD2;D0,3\nT(4)0,2;T0,1\n"
	cipherFile  = "CALL\nSTOP\nHNTRA\nHHHHOPPED\nAHCKBAND\n"
)

func TestRunner_EncodeDecode(t *testing.T) {
	r := runner.NewRunner(scrambler.New())
	ctx := context.Background()

	var encoded bytes.Buffer
	sum, err := r.Run(ctx, strings.NewReader(plainFile), strings.NewReader(commandFile), runner.NewTextWriter(&encoded), domain.Encode)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Lines)
	assert.Equal(t, cipherFile, encoded.String())

	var decoded bytes.Buffer
	_, err = r.Run(ctx, strings.NewReader(encoded.String()), strings.NewReader(commandFile), runner.NewTextWriter(&decoded), domain.Decode)
	require.NoError(t, err)
	assert.Equal(t, "BALL\nTOPS\nTRAIN\nHOPED\nBACKHAND\n", decoded.String())
}

func TestRunner_Alignment(t *testing.T) {
	r := runner.NewRunner(scrambler.New())
	ctx := context.Background()

	t.Run("More Messages", func(t *testing.T) {
		var out bytes.Buffer
		sum, err := r.Run(ctx, strings.NewReader("A\nB\nC\n"), strings.NewReader("R\n"), runner.NewTextWriter(&out), domain.Encode)
		var alignErr *domain.AlignmentError
		require.ErrorAs(t, err, &alignErr)
		assert.Equal(t, 3, alignErr.MessageLines)
		assert.Equal(t, 1, alignErr.CommandLines)
		assert.Equal(t, 1, sum.Lines)
		assert.Equal(t, "A\n", out.String())
	})

	t.Run("More Commands", func(t *testing.T) {
		var out bytes.Buffer
		_, err := r.Run(ctx, strings.NewReader("A"), strings.NewReader("R\nR\n"), runner.NewTextWriter(&out), domain.Encode)
		assert.ErrorIs(t, err, domain.ErrAlignment)
		var alignErr *domain.AlignmentError
		require.ErrorAs(t, err, &alignErr)
		assert.Equal(t, 1, alignErr.MessageLines)
		assert.Equal(t, 2, alignErr.CommandLines)
	})
}

func TestRunner_StopsAtFailingLine(t *testing.T) {
	r := runner.NewRunner(scrambler.New())
	var out bytes.Buffer

	sum, err := r.Run(context.Background(),
		strings.NewReader("BALL\nTOPS\nTRAIN\n"),
		strings.NewReader("S0\nS9\nR\n"),
		runner.NewTextWriter(&out), domain.Encode)

	var lineErr *domain.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)
	assert.ErrorIs(t, err, domain.ErrIndex)
	assert.Equal(t, 1, sum.Lines)
	assert.Equal(t, "CALL\n", out.String(), "earlier lines are flushed, the failing one is not written")
}

func TestRunner_Canceled(t *testing.T) {
	r := runner.NewRunner(scrambler.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := r.Run(ctx, strings.NewReader("A\n"), strings.NewReader("R\n"), runner.NewTextWriter(&out), domain.Encode)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestJSONWriter(t *testing.T) {
	r := runner.NewRunner(scrambler.New())
	var out bytes.Buffer

	_, err := r.Run(context.Background(), strings.NewReader("SAUCE\n"), strings.NewReader("T0,3\n"), runner.NewJSONWriter(&out), domain.Encode)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, float64(1), rec["line"])
	assert.Equal(t, "SAUCE", rec["input"])
	assert.Equal(t, "T0,3", rec["commands"])
	assert.Equal(t, "encode", rec["direction"])
	assert.Equal(t, "CAUSE", rec["output"])
}

func TestMultiWriter(t *testing.T) {
	r := runner.NewRunner(scrambler.New())
	var text, ndjson bytes.Buffer
	w := runner.MultiWriter{runner.NewTextWriter(&text), runner.NewJSONWriter(&ndjson)}

	_, err := r.Run(context.Background(), strings.NewReader("TOPS\n"), strings.NewReader("R\n"), w, domain.Encode)
	require.NoError(t, err)
	assert.Equal(t, "STOP\n", text.String())
	assert.Contains(t, ndjson.String(), `"output":"STOP"`)
}
