package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type uploadDirArgs struct {
	local  string
	remote string
	thread int
}

func NewUploadDirCmd(c *Context) *cobra.Command {
	args := &uploadDirArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "upload-dir",
		Short: "Upload a local directory tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunUploadDir(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.local, "local", "l", "", "local directory to upload")
	subc.PersistentFlags().StringVarP(&args.remote, "remote", "r", "", "remote root collection")
	subc.PersistentFlags().IntVarP(&args.thread, "thread", "t", 0, "parallel uploads, 0 uses the config value")
	return subc
}

func onRunUploadDir(ctx context.Context, c *Context, args *uploadDirArgs) error {
	if len(args.local) == 0 || len(args.remote) == 0 {
		return fmt.Errorf("both local dir and remote root are required")
	}
	thread := args.thread
	if thread <= 0 {
		thread = c.Config.Thread
	}
	start := time.Now()
	var err error
	if thread <= 1 {
		err = c.Cli.UploadDir(ctx, args.remote, args.local)
	} else {
		err = parallelUploadDir(ctx, c, args, thread)
	}
	if err != nil {
		return fmt.Errorf("upload dir failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("upload dir succ",
		zap.String("local", args.local),
		zap.String("remote", args.remote),
		zap.Duration("cost", time.Since(start)))
	return nil
}

// parallelUploadDir trades the strict walk-order guarantee of UploadDir for
// concurrent transfers.
func parallelUploadDir(ctx context.Context, c *Context, args *uploadDirArgs, thread int) error {
	eg, subctx := errgroup.WithContext(ctx)
	eg.SetLimit(thread)
	err := filepath.WalkDir(args.local, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(args.local, p)
		if err != nil {
			return err
		}
		remote := path.Join(args.remote, filepath.ToSlash(rel))
		eg.Go(func() error {
			if _, err := c.Cli.UploadFile(subctx, p, remote); err != nil {
				logutil.GetLogger(subctx).Error("upload file failed",
					zap.String("local", p), zap.String("remote", remote), zap.Error(err))
				return err
			}
			return nil
		})
		return nil
	})
	if werr := eg.Wait(); werr != nil {
		return werr
	}
	return err
}

func init() {
	register(NewUploadDirCmd)
}
