package cookie

import (
	"iter"
	"strings"

	"github.com/lumen-web/lumen/http/status"
)

// Jar is a key-value storage for cookies received from a user-agent. Pairs
// consist of plain strings, not cookie.Cookie, as attributes never travel
// in the Cookie header. Names are matched case-sensitively.
type Jar struct {
	pairs []pair
}

type pair struct {
	key, value string
}

func NewJar() *Jar {
	return new(Jar)
}

func (j *Jar) Len() int {
	return len(j.pairs)
}

// Get returns the first cookie registered under the name.
func (j *Jar) Get(name string) (string, bool) {
	for _, p := range j.pairs {
		if p.key == name {
			return p.value, true
		}
	}

	return "", false
}

func (j *Jar) Add(name, value string) {
	j.pairs = append(j.pairs, pair{name, value})
}

// Pairs iterates the cookies in the order they appeared on the wire.
func (j *Jar) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range j.pairs {
			if !yield(p.key, p.value) {
				break
			}
		}
	}
}

var ErrBadCookie = status.New(status.BadRequest, status.KindParse, "cookie has a malformed syntax")

// Parse parses cookies, received from a user-agent. These are basically key-value pairs,
// so the function isn't applicable for Set-Cookie values
func Parse(jar *Jar, data string) (err error) {
	for len(data) > 0 {
		eq := strings.IndexByte(data, '=')
		if eq == -1 {
			break
		}

		key := data[:eq]
		data = data[eq+1:]

		if len(key) == 0 {
			return ErrBadCookie
		}

		var value string

		if cs := strings.IndexByte(data, ';'); cs != -1 {
			value, data = data[:cs], stripSpace(data[cs+1:])
		} else {
			value, data = data, ""
		}

		jar.Add(key, value)
	}

	if len(data) != 0 {
		return ErrBadCookie
	}

	return nil
}

func stripSpace(str string) string {
	if len(str) > 0 && str[0] == ' ' {
		return str[1:]
	}

	return str
}
