package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type statArgs struct {
	remote string
}

func NewStatCmd(c *Context) *cobra.Command {
	args := &statArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "stat",
		Short: "Show existence, size and mtime of a remote resource",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunStat(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.remote, "remote", "r", "", "remote path to stat")
	return subc
}

func onRunStat(ctx context.Context, c *Context, args *statArgs) error {
	if len(args.remote) == 0 {
		return fmt.Errorf("no remote path found")
	}
	exist, err := c.Cli.Exists(ctx, args.remote)
	if err != nil {
		return fmt.Errorf("check exist failed, err:%w", err)
	}
	if !exist {
		logutil.GetLogger(ctx).Info("remote path not found", zap.String("remote", args.remote))
		return nil
	}
	sz, err := c.Cli.Size(ctx, args.remote)
	if err != nil {
		return fmt.Errorf("read size failed, err:%w", err)
	}
	fields := []zap.Field{
		zap.String("remote", args.remote),
		zap.String("url", c.Cli.URL(args.remote)),
		zap.String("size", humanize.IBytes(uint64(sz))),
	}
	mtime, ok, err := c.Cli.ModifiedTime(ctx, args.remote)
	if err != nil {
		return fmt.Errorf("read mtime failed, err:%w", err)
	}
	if ok {
		fields = append(fields, zap.String("mtime", mtime.UTC().Format(http.TimeFormat)))
	}
	logutil.GetLogger(ctx).Info("stat succ", fields...)
	return nil
}

func init() {
	register(NewStatCmd)
}
