package body

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffered(t *testing.T) {
	t.Run("single shot", func(t *testing.T) {
		b := String("Hello World!")

		size, ok := b.SizeHint()
		require.True(t, ok)
		require.Equal(t, 12, size)

		chunk, err := b.Next()
		require.NoError(t, err)
		require.Equal(t, "Hello World!", string(chunk))

		// EOF from here on, every time
		for range 3 {
			_, err = b.Next()
			require.Equal(t, io.EOF, err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		b := Empty()

		size, ok := b.SizeHint()
		require.True(t, ok)
		require.Zero(t, size)

		_, err := b.Next()
		require.Equal(t, io.EOF, err)
	})
}

func TestReader(t *testing.T) {
	payload := strings.Repeat("lorem ipsum ", 1000)
	b := Reader(strings.NewReader(payload))

	_, ok := b.SizeHint()
	require.False(t, ok)

	data, err := ReadAll(b)
	require.NoError(t, err)
	require.Equal(t, payload, string(data))

	_, err = b.Next()
	require.Equal(t, io.EOF, err)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, os.WriteFile(path, []byte("file contents"), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	b, err := File(f)
	require.NoError(t, err)

	size, ok := b.SizeHint()
	require.True(t, ok)
	require.Equal(t, len("file contents"), size)

	data, err := ReadAll(b)
	require.NoError(t, err)
	require.Equal(t, "file contents", string(data))
}

func TestReadAll(t *testing.T) {
	data, err := ReadAll(Bytes([]byte("abc")))
	require.NoError(t, err)
	require.Equal(t, "abc", string(data))
}
