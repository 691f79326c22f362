package proto

// Protocol is an HTTP protocol version.
type Protocol uint8

const (
	Unknown Protocol = iota
	HTTP10
	HTTP11
)

const tokenLength = len("HTTP/x.x")

// Parse resolves a version token ("HTTP/1.1") into a Protocol.
func Parse(raw string) Protocol {
	if len(raw) != tokenLength || raw[:len("HTTP/")] != "HTTP/" || raw[6] != '.' {
		return Unknown
	}

	switch {
	case raw[5] == '1' && raw[7] == '1':
		return HTTP11
	case raw[5] == '1' && raw[7] == '0':
		return HTTP10
	default:
		return Unknown
	}
}

func (p Protocol) String() string {
	switch p {
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	default:
		return ""
	}
}

// KeepAliveByDefault reports whether connections persist unless the peer
// asks otherwise.
func (p Protocol) KeepAliveByDefault() bool {
	return p == HTTP11
}
