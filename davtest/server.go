// Package davtest provides an in-memory WebDAV endpoint covering the verbs
// the client issues (MKCOL, PUT, GET, HEAD, DELETE). It backs the client
// tests and the davmock binary; it is not a full RFC 4918 server.
package davtest

import (
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

var AllowMethods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodDelete,
	http.MethodHead,
	"MKCOL",
}

type entry struct {
	isDir bool
	data  []byte
	mtime time.Time
}

// Server stores the remote tree as a flat path map guarded by one mutex.
type Server struct {
	mu      sync.RWMutex
	entries map[string]*entry

	// Interceptor, when set, may override any request with a fixed status
	// code. Tests use it to simulate server failures.
	Interceptor func(method string, fpath string) (int, bool)
}

func NewServer() *Server {
	return &Server{
		entries: map[string]*entry{
			"/": {isDir: true, mtime: time.Now()},
		},
	}
}

func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	for _, method := range AllowMethods {
		r.Handle(method, "/*all", s.handle)
	}
	return r
}

func (s *Server) handle(c *gin.Context) {
	fpath := cleanPath(c.Request.URL.Path)
	if s.Interceptor != nil {
		if code, ok := s.Interceptor(c.Request.Method, fpath); ok {
			c.AbortWithStatus(code)
			return
		}
	}
	switch c.Request.Method {
	case http.MethodGet:
		s.handleGet(c, fpath)
	case http.MethodPut:
		s.handlePut(c, fpath)
	case http.MethodDelete:
		s.handleDelete(c, fpath)
	case http.MethodHead:
		s.handleHead(c, fpath)
	case "MKCOL":
		s.handleMkcol(c, fpath)
	default:
		c.AbortWithStatus(http.StatusForbidden)
	}
}

func (s *Server) handleMkcol(c *gin.Context, fpath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[fpath]; ok {
		c.AbortWithStatus(http.StatusMethodNotAllowed)
		return
	}
	parent, ok := s.entries[path.Dir(fpath)]
	if !ok || !parent.isDir {
		c.AbortWithStatus(http.StatusConflict)
		return
	}
	s.entries[fpath] = &entry{isDir: true, mtime: time.Now()}
	c.Status(http.StatusCreated)
}

func (s *Server) handlePut(c *gin.Context, fpath string) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if ent, ok := s.entries[fpath]; ok && ent.isDir {
		c.AbortWithStatus(http.StatusMethodNotAllowed)
		return
	}
	// nested PUT auto-creates parent collections
	for dir := path.Dir(fpath); dir != "/"; dir = path.Dir(dir) {
		if _, ok := s.entries[dir]; !ok {
			s.entries[dir] = &entry{isDir: true, mtime: time.Now()}
		}
	}
	s.entries[fpath] = &entry{data: raw, mtime: time.Now()}
	c.Status(http.StatusCreated)
}

func (s *Server) handleGet(c *gin.Context, fpath string) {
	s.mu.RLock()
	ent, ok := s.entries[fpath]
	s.mu.RUnlock()
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if ent.isDir {
		c.AbortWithStatus(http.StatusMethodNotAllowed)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", ent.data)
}

func (s *Server) handleHead(c *gin.Context, fpath string) {
	s.mu.RLock()
	ent, ok := s.entries[fpath]
	s.mu.RUnlock()
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if !ent.isDir {
		c.Writer.Header().Set("Content-Length", strconv.Itoa(len(ent.data)))
		c.Writer.Header().Set("Last-Modified", ent.mtime.UTC().Format(http.TimeFormat))
	}
	c.Status(http.StatusOK)
}

func (s *Server) handleDelete(c *gin.Context, fpath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[fpath]; !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	delete(s.entries, fpath)
	prefix := fpath + "/"
	for p := range s.entries {
		if strings.HasPrefix(p, prefix) {
			delete(s.entries, p)
		}
	}
	c.Status(http.StatusNoContent)
}

// Content returns the stored bytes of a file entry.
func (s *Server) Content(fpath string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ent, ok := s.entries[cleanPath(fpath)]
	if !ok || ent.isDir {
		return nil, false
	}
	return ent.data, true
}

// SetModifiedTime overrides the mtime of an existing entry.
func (s *Server) SetModifiedTime(fpath string, ts time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ent, ok := s.entries[cleanPath(fpath)]; ok {
		ent.mtime = ts
	}
}

func cleanPath(p string) string {
	p = path.Clean("/" + p)
	return p
}
