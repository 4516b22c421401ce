package estimate

import (
	"fmt"

	"github.com/teemo-ai/estimation-server/internal/app"
	"github.com/teemo-ai/estimation-server/internal/config"
	"github.com/teemo-ai/estimation-server/internal/services/estimation"

	"github.com/spf13/cobra"
)

// One-shot estimation from the command line, without running the server.
var Cmd = &cobra.Command{
	Use:   "estimate",
	Short: "Run a single estimation and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		paramsContent, _ := cmd.Flags().GetString("params")
		paramsPath, _ := cmd.Flags().GetString("params-path")
		outputPath, _ := cmd.Flags().GetString("output")
		debug, _ := cmd.Flags().GetBool("debug")

		if (paramsContent == "") == (paramsPath == "") {
			return fmt.Errorf("exactly one of --params and --params-path is required")
		}
		if outputPath == "" {
			return fmt.Errorf("--output is required")
		}

		application, err := app.NewApp(cfg,
			app.WithStorage(),
			app.WithEstimator(),
		)
		if err != nil {
			return fmt.Errorf("error initializing app: %w", err)
		}
		defer application.Close()

		ctx := application.Context()

		params := paramsContent
		if paramsPath != "" {
			params, err = application.Storage.Read(ctx, paramsPath)
			if err != nil {
				return fmt.Errorf("error reading params: %w", err)
			}
		}

		result, err := application.Estimator.Estimate(ctx, params, estimation.Options{Debug: debug})
		if err != nil {
			return fmt.Errorf("estimation failed: %w", err)
		}

		if err := application.Storage.Write(ctx, outputPath, result); err != nil {
			return fmt.Errorf("error writing result: %w", err)
		}

		fmt.Printf("Output saved to: %s\n", outputPath)
		return nil
	},
}

func init() {
	Cmd.Flags().String("params", "", "Model configuration text")
	Cmd.Flags().String("params-path", "", "Path to a parameters file (gs://bucket/path or local path)")
	Cmd.Flags().String("output", "", "Output path (gs://bucket/path or local path)")
	Cmd.Flags().Bool("debug", false, "Log the raw model response")
}
