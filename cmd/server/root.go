package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hedgeapi/internal/config"
)

type rootOptions struct {
	configPath string
	envOnly    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		configPath: os.Getenv("HEDGE_CONFIG"),
	}
	if opts.configPath == "" {
		opts.configPath = "config/config.yaml"
	}
	if raw := os.Getenv("HEDGE_ENV_ONLY"); raw != "" {
		opts.envOnly = strings.EqualFold(raw, "true") || raw == "1"
	}

	cmd := &cobra.Command{
		Use:           "hedgeapi",
		Short:         "AI Hedge SaaS backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", opts.configPath, "path to config yaml")
	cmd.PersistentFlags().BoolVar(&opts.envOnly, "env-only", opts.envOnly, "ignore the config file and read the environment only")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newDiagCmd(opts))
	return cmd
}

func (o *rootOptions) load() (config.Config, error) {
	return config.Load(o.configPath, o.envOnly)
}
