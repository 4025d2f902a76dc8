package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, isTerminal("out.txt", &buf))
}

func TestGetOutputBuffersFiles(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "out.txt")

	out, err := getOutput(ctx, filename, false)
	require.NoError(t, err)

	_, ok := out.(*bufferedOutput)
	assert.True(t, ok)

	acc := newLineAccumulator(out, Config{NumberAll: true})
	_, err = acc.Write([]byte("a\nb"))
	require.NoError(t, err)
	require.NoError(t, acc.Close())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "     1\ta\n     2\tb", string(data))
}

func TestGetOutputUnbuffered(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "out.txt")

	out, err := getOutput(ctx, filename, true)
	require.NoError(t, err)

	_, ok := out.(*bufferedOutput)
	assert.False(t, ok)

	_, err = out.Write([]byte("x\n"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}
