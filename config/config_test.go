package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Positive(t, cfg.URI.MaxRequestLineSize)
	require.Positive(t, cfg.Headers.MaxNumber)
	require.Positive(t, cfg.Headers.MaxSpace)
	require.NotNil(t, cfg.Headers.Default)
	require.Positive(t, cfg.Body.MaxSize)
	require.Positive(t, cfg.Body.MaxChunkSize)
	require.Positive(t, cfg.NET.ReadBufferSize)
}
