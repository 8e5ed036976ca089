package client

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// UploadDir walks localRoot depth-first and uploads every regular file to
// remoteRoot joined with the file's path relative to localRoot. Uploads run
// strictly sequentially in walk order and the first failure aborts the rest,
// which may leave the remote tree partially populated.
//
// No MKCOL is issued for intermediate directories: the server must accept
// nested PUTs, or the caller has to create the collection tree up front via
// Mkdir.
func (c *Client) UploadDir(ctx context.Context, remoteRoot string, localRoot string) error {
	return filepath.WalkDir(localRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(localRoot, p)
		if err != nil {
			return err
		}
		remote := path.Join(remoteRoot, filepath.ToSlash(rel))
		if _, err := c.UploadFile(ctx, p, remote); err != nil {
			return err
		}
		logutil.GetLogger(ctx).Debug("upload file succ",
			zap.String("local", p), zap.String("remote", remote))
		return nil
	})
}
