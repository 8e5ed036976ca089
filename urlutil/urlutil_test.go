package urlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFullPath(t *testing.T) {
	assert.Equal(t, "/dav/a.txt", ResolveFullPath("/dav", "a.txt"))
	assert.Equal(t, "/dav/a.txt", ResolveFullPath("/dav", "/a.txt"))
	assert.Equal(t, "/dav/sub/b.txt", ResolveFullPath("/dav", "///sub/b.txt"))
	assert.Equal(t, "a.txt", ResolveFullPath("", "/a.txt"))
	assert.Equal(t, "/dav", ResolveFullPath("/dav", ""))
}

func TestResolveFullPathLeadingSlashIdempotent(t *testing.T) {
	paths := []string{"a.txt", "sub/b.txt", "deep/er/c.bin"}
	for _, p := range paths {
		assert.Equal(t, ResolveFullPath("/base", p), ResolveFullPath("/base", "/"+p))
	}
}

func TestConstructURL(t *testing.T) {
	assert.Equal(t, "http://dav.example.com/dav/a.txt", ConstructURL("http", "dav.example.com", "/dav/a.txt", 0))
	assert.Equal(t, "https://dav.example.com:8443/dav/a.txt", ConstructURL("https", "dav.example.com", "dav/a.txt", 8443))
	assert.Equal(t, "http://h/p%20q", ConstructURL("http", "h", "/p q", 0))
}
