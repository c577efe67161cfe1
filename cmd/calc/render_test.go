package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/calc/pkg/eval"
)

func TestErrorOffset(t *testing.T) {
	src := []byte("2+@")
	_, err := eval.Run(src)
	require.Error(t, err)
	assert.Equal(t, 2, errorOffset(err))

	_, err = eval.Run([]byte("5/0"))
	require.Error(t, err)
	assert.Equal(t, 1, errorOffset(err))

	assert.Equal(t, -1, errorOffset(errors.New("plain")))
}

func TestRenderErrorCaret(t *testing.T) {
	src := []byte("2+@")
	_, err := eval.Run(src)
	require.Error(t, err)

	out := renderError(src, err)
	assert.Contains(t, out, "2+@")
	assert.Contains(t, out, "  ^ lexical error")
}

func TestRenderErrorWithoutOffset(t *testing.T) {
	err := errors.New("plain failure")
	out := renderError([]byte("1+1"), err)
	assert.Contains(t, out, "plain failure")
	assert.NotContains(t, out, "^")
}
