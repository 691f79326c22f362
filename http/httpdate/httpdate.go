// Package httpdate formats and parses RFC 1123 dates as they appear in
// Date, Expires and friends. The wire format is always GMT.
package httpdate

import (
	"time"

	"github.com/lumen-web/lumen/http/status"
)

const layout = "Mon, 02 Jan 2006 15:04:05 GMT"

var ErrBadDate = status.New(status.BadRequest, status.KindParse, "malformed http date")

// Format renders t as an RFC 1123 stamp in GMT.
func Format(t time.Time) string {
	return t.UTC().Format(layout)
}

// Parse reads an RFC 1123 stamp back into a time.Time.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}

	return t, nil
}
