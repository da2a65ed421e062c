package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ai_content_generator/config"
	"ai_content_generator/logging"
)

type rootOptions struct {
	configPath string
	addr       string
	logLevel   string

	cfg config.Config
}

// NewRootCmd builds the command tree. Config is loaded once per invocation
// before any subcommand runs.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "ai-content-generator",
		Short:         "Generate outlines, articles and translations with an LLM",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a config file (json/yaml)")
	root.PersistentFlags().StringVar(&opts.addr, "addr", "", "http listen address, overrides server_addr")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides log_level")

	root.AddCommand(newServeCmd(opts), newSettingsCmd(opts))
	return root
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.addr != "" {
		cfg.ServerAddr = o.addr
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
