package cookie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		jar := NewJar()
		require.NoError(t, Parse(jar, "hello=world"))
		value, found := jar.Get("hello")
		require.True(t, found)
		require.Equal(t, "world", value)
	})

	t.Run("multiple pairs", func(t *testing.T) {
		jar := NewJar()
		require.NoError(t, Parse(jar, "hello=world; foo=bar; lorem=ipsum"))
		require.Equal(t, 3, jar.Len())

		var keys, values []string
		for k, v := range jar.Pairs() {
			keys = append(keys, k)
			values = append(values, v)
		}
		require.Equal(t, []string{"hello", "foo", "lorem"}, keys)
		require.Equal(t, []string{"world", "bar", "ipsum"}, values)
	})

	t.Run("empty value", func(t *testing.T) {
		jar := NewJar()
		require.NoError(t, Parse(jar, "hello="))
		value, found := jar.Get("hello")
		require.True(t, found)
		require.Empty(t, value)
	})

	t.Run("empty key", func(t *testing.T) {
		jar := NewJar()
		require.Equal(t, ErrBadCookie, Parse(jar, "=world"))
	})

	t.Run("dangling pair", func(t *testing.T) {
		jar := NewJar()
		require.Equal(t, ErrBadCookie, Parse(jar, "hello=world; foo"))
	})

	t.Run("case sensitive names", func(t *testing.T) {
		jar := NewJar()
		require.NoError(t, Parse(jar, "Session=abc"))
		_, found := jar.Get("session")
		require.False(t, found)
	})
}
