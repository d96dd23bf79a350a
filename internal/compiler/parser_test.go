package compiler_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scrambler/internal/compiler"
	"github.com/aretw0/scrambler/pkg/domain"
)

func TestParser_Parse(t *testing.T) {
	p := compiler.NewParser()

	tests := []struct {
		tok  string
		want domain.Command
	}{
		{"S0", domain.Shift{Index: 0, Delta: 1}},
		{"S3,2", domain.Shift{Index: 3, Delta: 2}},
		{"S3,-27", domain.Shift{Index: 3, Delta: -27}},
		{"R", domain.Rotate{Amount: 1}},
		{"R2", domain.Rotate{Amount: 2}},
		{"R-4", domain.Rotate{Amount: -4}},
		{"R+3", domain.Rotate{Amount: 3}},
		{"D1", domain.Duplicate{Index: 1, Count: 1}},
		{"D2,3", domain.Duplicate{Index: 2, Count: 3}},
		{"T0,3", domain.Trade{I: 0, J: 3}},
		{"T(4)0,2", domain.Trade{Groups: 4, I: 0, J: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := p.Parse(tt.tok)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_Reject(t *testing.T) {
	p := compiler.NewParser()

	tests := []struct {
		tok    string
		reason string
	}{
		{"", "empty token"},
		{"X1", "unknown operator"},
		{"s1", "unknown operator"},
		{"S", "missing index"},
		{"S,2", "missing index"},
		{"S1,", "missing delta"},
		{"S1,x", "missing delta"},
		{"Rx", "missing amount"},
		{"D", "missing index"},
		{"D1,", "missing count"},
		{"T1", "expected ','"},
		{"T1,", "missing second index"},
		{"T(4", "expected ')'"},
		{"T(4)", "missing first index"},
		{"T()0,1", "missing group count"},
		{"T4)0,1", "expected ','"},
		{"T(0)0,1", "group count must be non-zero"},
		{"S1,2,3", "unexpected trailing input"},
		{"R2R", "unexpected trailing input"},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			_, err := p.Parse(tt.tok)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrParse)

			var parseErr *domain.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.tok, parseErr.Token)
			assert.Contains(t, parseErr.Reason, tt.reason)
		})
	}
}

func TestParser_ParseLine(t *testing.T) {
	p := compiler.NewParser()

	encodeForm, err := p.ParseLine("S0;R2;T(4)0,2")
	require.NoError(t, err)
	decodeForm, err := p.ParseLine("S0 R2  T(4)0,2")
	require.NoError(t, err)
	assert.Equal(t, encodeForm, decodeForm)
	assert.Len(t, encodeForm, 3)

	empty, err := p.ParseLine("   ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = p.ParseLine("S0;Q1;R")
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Q1", parseErr.Token)
}

func TestCommand_StringRoundTrip(t *testing.T) {
	p := compiler.NewParser()
	for _, tok := range []string{"S0", "S3,2", "S1,-1", "R", "R2", "R-1", "D4", "D2,3", "T0,3", "T(4)0,2"} {
		cmd, err := p.Parse(tok)
		require.NoError(t, err)
		assert.Equal(t, tok, cmd.String())
	}
}

func TestParser_ParseLineMixed(t *testing.T) {
	p := compiler.NewParser()

	got, err := p.ParseLine("S0;R2 D1,3\tT(4)0,2;;")
	require.NoError(t, err)

	want := []domain.Command{
		domain.Shift{Index: 0, Delta: 1},
		domain.Rotate{Amount: 2},
		domain.Duplicate{Index: 1, Count: 3},
		domain.Trade{Groups: 4, I: 0, J: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseLine mismatch (-want +got):\n%s", diff)
	}
}
