package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/davkit/client"
	"github.com/xxxsen/davkit/cmd/davc/config"
)

const (
	defaultConfigFileEnv = "DAVC_CONFIG"
)

var cmds []CreateFunc

type Context struct {
	Cli    *client.Client
	Config *config.Config
}

type CreateFunc func(ctx *Context) *cobra.Command

func register(cr CreateFunc) {
	cmds = append(cmds, cr)
}

func initContext(ctx *Context, cfgs []string) error {
	var c *config.Config
	var lastErr error
	for _, cfg := range cfgs {
		parsed, err := config.Parse(cfg)
		if err != nil {
			lastErr = err
			continue
		}
		c = parsed
		break
	}
	if c == nil {
		return fmt.Errorf("no valid config file found, last err:%w", lastErr)
	}
	ctx.Config = c
	logger.Init("", c.LogLevel, 0, 0, 0, true)
	cli, err := client.New(
		client.WithSchema(c.Schema),
		client.WithHost(c.Host),
		client.WithPort(c.Port),
		client.WithBasePath(c.BasePath),
		client.WithAuth(c.User, c.Password),
	)
	if err != nil {
		return err
	}
	ctx.Cli = cli
	return nil
}

func NewRoot() *cobra.Command {
	var configFile string
	ctx := &Context{}
	var rootCmd = &cobra.Command{
		Use:   "davc",
		Short: "WebDAV CLI tool",
	}
	for _, cr := range cmds {
		rootCmd.AddCommand(cr(ctx))
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		envConfigFile, _ := os.LookupEnv(defaultConfigFileEnv)
		return initContext(ctx, []string{configFile, "/etc/davc/davc_config.json", "C:/davc/davc_config.json", envConfigFile})
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	return rootCmd
}
