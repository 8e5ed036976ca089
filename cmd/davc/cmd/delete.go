package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type deleteArgs struct {
	remote string
}

func NewDeleteCmd(c *Context) *cobra.Command {
	args := &deleteArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "delete",
		Short: "Delete a remote resource",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(args.remote) == 0 {
				return fmt.Errorf("no remote path found")
			}
			if err := c.Cli.Delete(ctx, args.remote); err != nil {
				return fmt.Errorf("delete failed, err:%w", err)
			}
			logutil.GetLogger(ctx).Info("delete succ", zap.String("remote", args.remote))
			return nil
		},
	}
	subc.PersistentFlags().StringVarP(&args.remote, "remote", "r", "", "remote path to delete")
	return subc
}

func init() {
	register(NewDeleteCmd)
}
