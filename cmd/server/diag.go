package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hedgeapi/internal/logger"
)

func newDiagCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diag",
		Short: "Print the store diagnostics report and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			cfg.Log.Level = "error"
			log, err := logger.New(cfg.Log)
			if err != nil {
				log = zap.NewNop()
			}
			defer log.Sync()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			a := newApp(ctx, cfg, log)
			defer a.close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.diagnostics.Report(ctx))
		},
	}
}
