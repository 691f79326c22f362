package body

import "os"

type fileBody struct {
	readerBody
	size int
}

// File streams a file as a Body, hinting its size from metadata.
func File(f *os.File) (Body, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return &fileBody{
		readerBody: readerBody{
			src: f,
			buf: make([]byte, readChunkSize),
		},
		size: int(info.Size()),
	}, nil
}

func (f *fileBody) SizeHint() (int, bool) {
	return f.size, true
}
