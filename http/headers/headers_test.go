package headers

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-web/lumen/http/status"
)

func collect(h *Headers, key string) (values []string) {
	for value := range h.GetAll(key) {
		values = append(values, string(value))
	}

	return values
}

func TestHeaders(t *testing.T) {
	t.Run("case-insensitive lookup", func(t *testing.T) {
		h := New()
		h.Set("Content-Type", "text/html")

		for _, key := range []string{"Content-Type", "content-type", "CONTENT-TYPE", "cOnTeNt-TyPe"} {
			value, found := h.Get(key)
			require.True(t, found, key)
			require.EqualValues(t, "text/html", value)
		}

		_, found := h.Get("Content-Length")
		require.False(t, found)
	})

	t.Run("multi-value ordering", func(t *testing.T) {
		h := New()
		h.Add("Fruits", "apple")
		h.Add("fruits", "strawberry")
		h.Add("FRUITS", "banana")

		require.Equal(t, 1, h.Len())
		require.Equal(t, []string{"apple", "strawberry", "banana"}, collect(h, "fruits"))

		first, found := h.Get("Fruits")
		require.True(t, found)
		require.EqualValues(t, "apple", first)
	})

	t.Run("set replaces the whole list", func(t *testing.T) {
		h := New()
		h.Add("Accept", "text/html")
		h.Add("Accept", "application/json")

		prev, replaced := h.Set("accept", "*/*")
		require.True(t, replaced)
		require.EqualValues(t, "text/html", prev)
		require.Equal(t, []string{"*/*"}, collect(h, "Accept"))
	})

	t.Run("set on a fresh key", func(t *testing.T) {
		h := New()
		prev, replaced := h.Set("Host", "localhost")
		require.False(t, replaced)
		require.Empty(t, prev)
	})

	t.Run("add reports existence", func(t *testing.T) {
		h := New()
		require.False(t, h.Add("Via", "proxy-a"))
		require.True(t, h.Add("via", "proxy-b"))
	})

	t.Run("delete removes all values", func(t *testing.T) {
		h := New()
		h.Add("Set-Cookie", "a=1")
		h.Add("Set-Cookie", "b=2")
		h.Set("Server", "lumen")

		prev, existed := h.Delete("set-cookie")
		require.True(t, existed)
		require.EqualValues(t, "a=1", prev)
		require.False(t, h.Has("Set-Cookie"))
		require.Equal(t, 1, h.Len())

		_, existed = h.Delete("set-cookie")
		require.False(t, existed)
	})

	t.Run("declaration order is stable", func(t *testing.T) {
		h := New()
		h.Set("Host", "example.com")
		h.Add("Accept", "text/html")
		h.Add("Accept", "application/json")
		h.Set("User-Agent", "test")

		var keys []string
		var values []string
		for key, value := range h.Pairs() {
			keys = append(keys, string(key))
			values = append(values, string(value))
		}

		require.Equal(t, []string{"Host", "Accept", "Accept", "User-Agent"}, keys)
		require.Equal(t, []string{"example.com", "text/html", "application/json", "test"}, values)

		require.Equal(t, []Name{"Host", "Accept", "User-Agent"}, slices.Collect(h.Keys()))
	})

	t.Run("clone is independent", func(t *testing.T) {
		h := New()
		h.Add("Fruits", "apple")
		h.Add("Fruits", "banana")

		clone := h.Clone()
		h.Set("Fruits", "pear")

		require.Equal(t, []string{"apple", "banana"}, collect(clone, "Fruits"))
	})
}

func TestNameValidation(t *testing.T) {
	for _, valid := range []string{"Content-Type", "x-custom_header", "ETag", "!#$%&'*+-.^_`|~"} {
		name, err := NewName(valid)
		require.NoError(t, err, valid)
		require.EqualValues(t, valid, name)
	}

	for _, invalid := range []string{"", "Content Type", "Name:", "naïve", "tab\there", "line\nbreak"} {
		_, err := NewName(invalid)
		require.Equal(t, status.ErrInvalidHeaderName, err, invalid)
	}
}

func TestValueValidation(t *testing.T) {
	for _, valid := range []string{"", "text/html; charset=utf-8", "with\ttab", "spaces are fine"} {
		value, err := NewValue(valid)
		require.NoError(t, err, valid)
		require.EqualValues(t, valid, value)
	}

	for _, invalid := range []string{"line\nbreak", "carriage\rreturn", "null\x00byte", "høst"} {
		_, err := NewValue(invalid)
		require.Equal(t, status.ErrInvalidHeaderValue, err, invalid)
	}
}

func TestNameEqual(t *testing.T) {
	require.True(t, Name("Fruits").Equal("fruits"))
	require.True(t, Name("FRUITS").Equal("fRuItS"))
	require.False(t, Name("Fruits").Equal("Vegetables"))
}
