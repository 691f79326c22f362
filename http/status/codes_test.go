package status

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeString(t *testing.T) {
	for _, code := range []Code{OK, NotFound, BadRequest, RequestHeaderFieldsTooLarge} {
		require.Equal(t, strconv.Itoa(int(code)), code.String())
	}
}

func TestText(t *testing.T) {
	require.EqualValues(t, "OK", Text(OK))
	require.EqualValues(t, "Request Entity Too Large", Text(RequestEntityTooLarge))
	require.EqualValues(t, "Unknown Status Code", Text(Code(999)))
}

func TestErrorKind(t *testing.T) {
	require.Equal(t, KindParse, ErrorKind(ErrBadRequest))
	require.Equal(t, KindLimit, ErrorKind(ErrReaderBytesLimit))
	require.Equal(t, KindTransport, ErrorKind(strconv.ErrSyntax))

	require.Equal(t, RequestHeaderFieldsTooLarge, CodeOf(ErrTooManyHeaders))
	require.Equal(t, InternalServerError, CodeOf(strconv.ErrSyntax))
}
