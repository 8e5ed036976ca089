package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/retry"
	"github.com/xxxsen/davkit/urlutil"
	"go.uber.org/zap"
)

// Client talks the WebDAV subset (MKCOL, PUT, GET, HEAD, DELETE) to a single
// remote endpoint. Every operation issues exactly one request and validates
// the status code against the operation's expected set; see codes.go.
//
// A Client owns one http.Client session for connection reuse and is built for
// single-goroutine use; the endpoint configuration is immutable after New.
type Client struct {
	c       *config
	session *http.Client
}

func New(opts ...Option) (*Client, error) {
	c := &config{
		Schema: "https",
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.Host) == 0 {
		return nil, fmt.Errorf("no host found")
	}
	session := c.HTTPClient
	if session == nil {
		session = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				IdleConnTimeout:     20 * time.Second,
				MaxIdleConns:        5,
				MaxIdleConnsPerHost: 1,
			},
			// 301 is part of several expected-code sets, so the session must
			// surface redirects instead of chasing them.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	return &Client{c: c, session: session}, nil
}

type sendOptions struct {
	body          io.Reader
	contentLength int64
}

func (c *Client) fullPath(remotePath string) string {
	return urlutil.ResolveFullPath(c.c.BasePath, remotePath)
}

// URL resolves the absolute URL of a remote path without touching the network.
func (c *Client) URL(remotePath string) string {
	return urlutil.ConstructURL(c.c.Schema, c.c.Host, c.fullPath(remotePath), c.c.Port)
}

func (c *Client) applyAuth(req *http.Request) {
	if len(c.c.AccessKey) == 0 {
		return
	}
	req.SetBasicAuth(c.c.AccessKey, c.c.SecretKey)
}

func (c *Client) send(ctx context.Context, method string, remotePath string, expected statusSet, opt *sendOptions) (*http.Response, error) {
	fullPath := c.fullPath(remotePath)
	target := urlutil.ConstructURL(c.c.Schema, c.c.Host, fullPath, c.c.Port)
	var body io.Reader
	var length int64
	if opt != nil {
		body = opt.body
		length = opt.contentLength
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	if length > 0 {
		req.ContentLength = length
	}
	c.applyAuth(req)
	rsp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if !expected.contains(rsp.StatusCode) {
		reason := strings.TrimSpace(strings.TrimPrefix(rsp.Status, strconv.Itoa(rsp.StatusCode)))
		discardBody(rsp)
		logutil.GetLogger(ctx).Error("unexpected status code",
			zap.String("method", method), zap.String("path", fullPath), zap.Int("code", rsp.StatusCode))
		return nil, &ProtocolError{Method: method, StatusCode: rsp.StatusCode, Reason: reason}
	}
	logutil.GetLogger(ctx).Debug("request finish",
		zap.String("method", method), zap.String("path", fullPath), zap.Int("code", rsp.StatusCode))
	return rsp, nil
}

// sendRetryable wraps send for requests without a body. A ProtocolError is
// never retried; only transport failures go through another attempt, and only
// when WithRetry was given.
func (c *Client) sendRetryable(ctx context.Context, method string, remotePath string, expected statusSet) (*http.Response, error) {
	if c.c.RetryCount <= 0 {
		return c.send(ctx, method, remotePath, expected, nil)
	}
	var rsp *http.Response
	var perr *ProtocolError
	if err := retry.RetryDo(ctx, uint32(c.c.RetryCount), c.c.RetryInterval, func(ctx context.Context) error {
		r, err := c.send(ctx, method, remotePath, expected, nil)
		if err != nil {
			if p, ok := AsProtocolError(err); ok {
				perr = p
				return nil
			}
			return err
		}
		rsp = r
		return nil
	}); err != nil {
		return nil, err
	}
	if perr != nil {
		return nil, perr
	}
	return rsp, nil
}

// Mkdir creates a remote collection. A 405 (already exists) or 301 response
// counts as success, so repeated calls are idempotent.
func (c *Client) Mkdir(ctx context.Context, remotePath string) error {
	rsp, err := c.sendRetryable(ctx, methodMkcol, remotePath, mkdirExpectedCodes)
	if err != nil {
		return err
	}
	discardBody(rsp)
	return nil
}

// Delete removes a remote resource. Deleting something that is already gone
// is an acceptable outcome, so any ProtocolError is treated as success;
// transport failures still propagate.
func (c *Client) Delete(ctx context.Context, remotePath string) error {
	rsp, err := c.sendRetryable(ctx, http.MethodDelete, remotePath, deleteExpectedCodes)
	if err != nil {
		if _, ok := AsProtocolError(err); ok {
			return nil
		}
		return err
	}
	discardBody(rsp)
	return nil
}

// UploadFile streams a local file to the remote path and returns the remote
// path on success. The file is opened and closed by the client.
func (c *Client) UploadFile(ctx context.Context, localPath string, remotePath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return "", err
	}
	return c.putStream(ctx, f, st.Size(), remotePath)
}

// UploadStream streams a caller-owned reader to the remote path. The reader
// is not closed.
func (c *Client) UploadStream(ctx context.Context, r io.Reader, remotePath string) (string, error) {
	return c.putStream(ctx, r, 0, remotePath)
}

func (c *Client) putStream(ctx context.Context, r io.Reader, size int64, remotePath string) (string, error) {
	rsp, err := c.send(ctx, http.MethodPut, remotePath, uploadExpectedCodes, &sendOptions{
		body:          r,
		contentLength: size,
	})
	if err != nil {
		return "", err
	}
	discardBody(rsp)
	return remotePath, nil
}

// Download fetches a remote file and buffers the whole body in memory.
func (c *Client) Download(ctx context.Context, remotePath string) (*ContentFile, error) {
	rsp, err := c.send(ctx, http.MethodGet, remotePath, downloadExpectedCodes, nil)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()
	raw, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body failed, err:%w", err)
	}
	return NewContentFile(path.Base(c.fullPath(remotePath)), raw), nil
}

// Exists reports whether a remote resource is present. 404 is an expected
// response here, not an error; it just means false.
func (c *Client) Exists(ctx context.Context, remotePath string) (bool, error) {
	rsp, err := c.sendRetryable(ctx, http.MethodHead, remotePath, existsExpectedCodes)
	if err != nil {
		return false, err
	}
	discardBody(rsp)
	return rsp.StatusCode != http.StatusNotFound, nil
}

// Size returns the Content-Length of a remote resource, 0 when the server
// sends no such header.
func (c *Client) Size(ctx context.Context, remotePath string) (int64, error) {
	rsp, err := c.sendRetryable(ctx, http.MethodHead, remotePath, sizeExpectedCodes)
	if err != nil {
		return 0, err
	}
	discardBody(rsp)
	v := rsp.Header.Get("Content-Length")
	if len(v) == 0 {
		return 0, nil
	}
	sz, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse content-length failed, value:%s, err:%w", v, err)
	}
	return sz, nil
}

// ModifiedTime returns the Last-Modified timestamp of a remote resource.
// ok is false when the server sends no Last-Modified header.
func (c *Client) ModifiedTime(ctx context.Context, remotePath string) (mtime time.Time, ok bool, err error) {
	rsp, err := c.sendRetryable(ctx, http.MethodHead, remotePath, modifiedTimeExpectedCodes)
	if err != nil {
		return time.Time{}, false, err
	}
	discardBody(rsp)
	v := rsp.Header.Get("Last-Modified")
	if len(v) == 0 {
		return time.Time{}, false, nil
	}
	ts, err := time.Parse(http.TimeFormat, v)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse last-modified failed, value:%s, err:%w", v, err)
	}
	return ts, true, nil
}

// discardBody drains and closes the response body so the connection can go
// back to the idle pool.
func discardBody(rsp *http.Response) {
	if rsp == nil || rsp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, rsp.Body)
	_ = rsp.Body.Close()
}
