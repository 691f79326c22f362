package cookie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Run("bare pair", func(t *testing.T) {
		require.Equal(t, "hello=world", New("hello", "world").String())
	})

	t.Run("all attributes", func(t *testing.T) {
		c := Build("session", "id 42").
			Path("/api").
			Domain("example.com").
			Expires(time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC)).
			MaxAge(3600).
			SameSite(SameSiteStrict).
			Secure(true).
			HttpOnly(true).
			Cookie()

		require.Equal(t,
			"session=id%2042; Path=/api; Domain=example.com; "+
				"Expires=Wed, 21 Oct 2015 07:28:00 GMT; Max-Age=3600; "+
				"SameSite=Strict; Secure; HttpOnly",
			c.String(),
		)
	})

	t.Run("negative max-age renders zero", func(t *testing.T) {
		c := Build("hello", "world").MaxAge(-1).Cookie()
		require.Equal(t, "hello=world; Max-Age=0", c.String())
	})

	t.Run("zero max-age omitted", func(t *testing.T) {
		c := Build("hello", "world").MaxAge(0).Cookie()
		require.Equal(t, "hello=world", c.String())
	})

	t.Run("reserved characters escaped", func(t *testing.T) {
		require.Equal(t, "a%3Db=c%3Bd", New("a=b", "c;d").String())
	})
}
