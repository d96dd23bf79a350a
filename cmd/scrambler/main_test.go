package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReverseCommand(t *testing.T) {
	out, err := execute(t, "reverse", "S0;R2;T(4)0,2")
	require.NoError(t, err)
	assert.Equal(t, "T(4)0,2 R2 S0\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Regexp(t, `^scrambler version \d+\.\d+\.\d+\n$`, out)
}

func TestEncodeCommand_Inline(t *testing.T) {
	out, err := execute(t, "encode", "--config", "", "--text", "BACKHAND", "--ops", "T(4)0,2")
	require.NoError(t, err)
	assert.Equal(t, "HACKBAND\n", out)
}
