package urlutil

import (
	"net/url"
	"path"
	"strconv"
	"strings"
)

// ResolveFullPath joins a relative remote path onto the configured base path.
// A leading slash on relativePath is stripped first, so the result always
// stays under basePath and callers cannot accidentally pass an absolute
// override. No ".." validation is performed here.
func ResolveFullPath(basePath string, relativePath string) string {
	relativePath = strings.TrimLeft(relativePath, "/")
	if len(basePath) == 0 {
		return relativePath
	}
	return path.Join(basePath, relativePath)
}

// ConstructURL formats an absolute URL from a network location, an absolute
// remote path and an optional port (port <= 0 means the scheme default).
// Path escaping is handled by net/url.
func ConstructURL(scheme string, netloc string, fullPath string, port int) string {
	if port > 0 {
		netloc = netloc + ":" + strconv.Itoa(port)
	}
	if !strings.HasPrefix(fullPath, "/") {
		fullPath = "/" + fullPath
	}
	u := &url.URL{
		Scheme: scheme,
		Host:   netloc,
		Path:   fullPath,
	}
	return u.String()
}
