package client

import (
	"net/http"
	"time"
)

type config struct {
	Schema        string
	Host          string
	Port          int
	BasePath      string
	AccessKey     string
	SecretKey     string
	HTTPClient    *http.Client
	RetryCount    int
	RetryInterval time.Duration
}

type Option func(*config)

func WithSchema(s string) Option {
	return func(c *config) {
		c.Schema = s
	}
}

func WithHost(h string) Option {
	return func(c *config) {
		c.Host = h
	}
}

func WithPort(p int) Option {
	return func(c *config) {
		c.Port = p
	}
}

func WithBasePath(p string) Option {
	return func(c *config) {
		c.BasePath = p
	}
}

func WithAuth(ak string, sk string) Option {
	return func(c *config) {
		c.AccessKey = ak
		c.SecretKey = sk
	}
}

// WithHTTPClient replaces the default session. The caller is then responsible
// for redirect policy: the built-in session does not follow redirects, since
// 301 is a meaningful outcome for several operations.
func WithHTTPClient(h *http.Client) Option {
	return func(c *config) {
		c.HTTPClient = h
	}
}

// WithRetry enables retrying for requests without a body. Requests carrying a
// stream payload are never retried. Zero count (the default) keeps the strict
// one-request-per-call behavior.
func WithRetry(cnt int, interval time.Duration) Option {
	return func(c *config) {
		c.RetryCount = cnt
		c.RetryInterval = interval
	}
}
