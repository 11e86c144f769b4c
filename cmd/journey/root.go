// cmd/journey/root.go
package main

import (
	"log/slog"
	"time"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/endpoint"
	"leetcode_journey/internal/model"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// cli はサブコマンド間で共有する状態
type cli struct {
	configPath   string
	verbose      bool
	probeTimeout time.Duration

	logger   *slog.Logger
	store    *endpoint.FileStore
	resolver *endpoint.Resolver

	// --verbose のときだけ設定変更イベントを購読する
	events      <-chan model.EndpointConfig
	unsubscribe func()
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "journey",
		Short:         "journey logs solved LeetCode problems to a leetcode-journey backend.",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.reportChanges()
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "endpoint config file (default $XDG_CONFIG_HOME/leetcode-journey/endpoint.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "print debug logs")
	root.PersistentFlags().DurationVar(&c.probeTimeout, "timeout", endpoint.DefaultProbeTimeout, "probe timeout")

	root.AddCommand(
		newConfigCmd(c),
		newDetectCmd(c),
		newProbeCmd(c),
		newLogCmd(c),
		newScheduleCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	path := c.configPath
	if path == "" {
		var err error
		path, err = endpoint.DefaultStorePath()
		if err != nil {
			return err
		}
	}
	c.store = endpoint.NewFileStore(path)
	c.resolver = endpoint.NewResolver(c.store, endpoint.NewHTTPProber(c.logger),
		endpoint.WithLogger(c.logger),
		endpoint.WithProbeTimeout(c.probeTimeout),
	)
	c.logger.Debug("Using endpoint config", slog.String("path", path))
	if c.verbose {
		c.events, c.unsubscribe = c.resolver.Subscribe()
	}
	return nil
}

// reportChanges はコマンド実行中に保存された設定をログに出して購読を解除する
func (c *cli) reportChanges() {
	if c.unsubscribe == nil {
		return
	}
	defer c.unsubscribe()
	for {
		select {
		case cfg := <-c.events:
			c.logger.Info("Endpoint changed", slog.String("api_url", cfg.BaseURL), slog.Bool("use_remote", cfg.UseRemote))
		default:
			return
		}
	}
}
