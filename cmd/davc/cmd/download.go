package cmd

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/davkit/utils"
	"go.uber.org/zap"
)

type downloadArgs struct {
	remote string
	out    string
}

func NewDownloadCmd(c *Context) *cobra.Command {
	args := &downloadArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "download",
		Short: "Download a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunDownload(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.remote, "remote", "r", "", "remote file to download")
	subc.PersistentFlags().StringVarP(&args.out, "out", "o", "", "local target path, defaults to the remote file name")
	return subc
}

func onRunDownload(ctx context.Context, c *Context, args *downloadArgs) error {
	if len(args.remote) == 0 {
		return fmt.Errorf("no remote file found")
	}
	out := args.out
	if len(out) == 0 {
		out = path.Base(args.remote)
	}
	start := time.Now()
	cf, err := c.Cli.Download(ctx, args.remote)
	if err != nil {
		return fmt.Errorf("download file failed, err:%w", err)
	}
	if err := utils.SaveStreamToFile(out, cf); err != nil {
		return fmt.Errorf("save file failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("download file succ",
		zap.String("out", out),
		zap.String("size", humanize.IBytes(uint64(cf.Size()))),
		zap.Duration("cost", time.Since(start)))
	return nil
}

func init() {
	register(NewDownloadCmd)
}
