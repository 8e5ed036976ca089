package client

import "bytes"

// ContentFile is the in-memory result of a download. It buffers the full
// response body and exposes it both as raw bytes and as a reader, so the
// embedding application can hand it to whatever file abstraction it uses.
type ContentFile struct {
	name string
	data []byte
	r    *bytes.Reader
}

func NewContentFile(name string, data []byte) *ContentFile {
	return &ContentFile{
		name: name,
		data: data,
		r:    bytes.NewReader(data),
	}
}

func (f *ContentFile) Name() string {
	return f.name
}

func (f *ContentFile) Size() int64 {
	return int64(len(f.data))
}

func (f *ContentFile) Bytes() []byte {
	return f.data
}

func (f *ContentFile) Read(p []byte) (int, error) {
	return f.r.Read(p)
}
