package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type uploadArgs struct {
	file   string
	remote string
}

func NewUploadCmd(c *Context) *cobra.Command {
	args := &uploadArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "upload",
		Short: "Upload a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunUpload(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.file, "file", "f", "", "local file to upload")
	subc.PersistentFlags().StringVarP(&args.remote, "remote", "r", "", "remote path with file name")
	return subc
}

func onRunUpload(ctx context.Context, c *Context, args *uploadArgs) error {
	if len(args.file) == 0 || len(args.remote) == 0 {
		return fmt.Errorf("both local file and remote path are required")
	}
	info, err := os.Stat(args.file)
	if err != nil {
		return err
	}
	start := time.Now()
	remote, err := c.Cli.UploadFile(ctx, args.file, args.remote)
	if err != nil {
		return fmt.Errorf("upload file failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("upload file succ",
		zap.String("link", c.Cli.URL(remote)),
		zap.String("size", humanize.IBytes(uint64(info.Size()))),
		zap.Duration("cost", time.Since(start)))
	return nil
}

func init() {
	register(NewUploadCmd)
}
