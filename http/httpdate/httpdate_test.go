package httpdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	moment := time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC)

	stamp := Format(moment)
	require.Equal(t, "Wed, 21 Oct 2015 07:28:00 GMT", stamp)

	parsed, err := Parse(stamp)
	require.NoError(t, err)
	require.True(t, moment.Equal(parsed))
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2015-10-21T07:28:00Z", "Wed, 21 Oct 2015"} {
		_, err := Parse(s)
		require.Equal(t, ErrBadDate, err, s)
	}
}
