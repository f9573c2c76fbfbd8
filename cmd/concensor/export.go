package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/joe135730/Concensor-sub001/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the public pages and assets to a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		logger, err := newLogger(cmd, false)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if err := export.Export(ctx, out, logger); err != nil {
			return err
		}
		logger.Info("export complete", "dir", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", "dist", "Output directory")
}
