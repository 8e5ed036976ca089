package client_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLocalTree(t *testing.T) string {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("aaa"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("bbb"), 0644))
	return root
}

func TestUploadDir(t *testing.T) {
	ctx := context.Background()
	svr, cli := newTestClient(t)
	root := buildLocalTree(t)

	var puts []string
	svr.Interceptor = func(method string, fpath string) (int, bool) {
		if method == http.MethodPut {
			puts = append(puts, fpath)
		}
		return 0, false
	}
	require.NoError(t, cli.UploadDir(ctx, "/dest", root))
	assert.Equal(t, []string{"/dest/a.txt", "/dest/sub/b.txt"}, puts)

	raw, ok := svr.Content("/dest/a.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("aaa"), raw)
	raw, ok = svr.Content("/dest/sub/b.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("bbb"), raw)
}

func TestUploadDirFirstFailureAborts(t *testing.T) {
	ctx := context.Background()
	svr, cli := newTestClient(t)
	root := buildLocalTree(t)

	var puts []string
	svr.Interceptor = func(method string, fpath string) (int, bool) {
		if method != http.MethodPut {
			return 0, false
		}
		puts = append(puts, fpath)
		if fpath == "/dest/a.txt" {
			return http.StatusInternalServerError, true
		}
		return 0, false
	}
	err := cli.UploadDir(ctx, "/dest", root)
	require.Error(t, err)
	// b.txt is never attempted once a.txt failed
	assert.Equal(t, []string{"/dest/a.txt"}, puts)
}

func TestUploadDirSkipsNonRegular(t *testing.T) {
	ctx := context.Background()
	svr, cli := newTestClient(t)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "only.txt"), []byte("x"), 0644))

	var puts int
	svr.Interceptor = func(method string, fpath string) (int, bool) {
		if method == http.MethodPut {
			puts++
		}
		return 0, false
	}
	require.NoError(t, cli.UploadDir(ctx, "/dest", root))
	assert.Equal(t, 1, puts)
}
