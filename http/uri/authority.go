package uri

import (
	"strconv"
	"strings"

	"github.com/lumen-web/lumen/http/status"
)

// Authority is the user-info@host:port component of a URI. An immutable
// value type: construct it via ParseAuthority and read it via accessors.
// The host is never empty; an empty one is a parse error.
type Authority struct {
	userInfo string
	host     string
	port     uint16
	hasUser  bool
	hasPort  bool
}

// ParseAuthority splits raw into user-info, host and port. IPv6 literals
// come bracketed on the wire; the brackets are stripped and their colons
// are never mistaken for the port separator.
func ParseAuthority(raw string) (Authority, error) {
	var a Authority

	if userInfo, rest, found := strings.Cut(raw, "@"); found {
		a.userInfo, a.hasUser = userInfo, true
		raw = rest
	}

	host, portStr, err := splitHostPort(raw)
	if err != nil {
		return a, err
	}

	if len(host) == 0 {
		return a, status.ErrEmptyHost
	}

	a.host = host

	if len(portStr) > 0 {
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return a, status.ErrInvalidPort
		}

		a.port, a.hasPort = uint16(port), true
	}

	return a, nil
}

func splitHostPort(raw string) (host, port string, err error) {
	if strings.HasPrefix(raw, "[") {
		closing := strings.IndexByte(raw, ']')
		if closing == -1 {
			return "", "", status.ErrInvalidHost
		}

		host = raw[1:closing]
		rest := raw[closing+1:]
		if len(rest) == 0 {
			return host, "", nil
		}

		if rest[0] != ':' || len(rest) == 1 {
			return "", "", status.ErrInvalidPort
		}

		return host, rest[1:], nil
	}

	host, port, found := strings.Cut(raw, ":")
	if found && len(port) == 0 {
		return "", "", status.ErrInvalidPort
	}

	return host, port, nil
}

// UserInfo returns the user-info component, if present.
func (a Authority) UserInfo() (string, bool) {
	return a.userInfo, a.hasUser
}

func (a Authority) Host() string {
	return a.host
}

// Port returns the port, if one was given explicitly.
func (a Authority) Port() (uint16, bool) {
	return a.port, a.hasPort
}

func (a Authority) String() string {
	var b strings.Builder

	if a.hasUser {
		b.WriteString(a.userInfo)
		b.WriteByte('@')
	}

	if strings.IndexByte(a.host, ':') != -1 {
		b.WriteByte('[')
		b.WriteString(a.host)
		b.WriteByte(']')
	} else {
		b.WriteString(a.host)
	}

	if a.hasPort {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(a.port)))
	}

	return b.String()
}
