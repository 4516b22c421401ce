package cmd

import (
	"fmt"
	"os"
	"strings"

	estimate "github.com/teemo-ai/estimation-server/cmd/teemo/estimate"
	run "github.com/teemo-ai/estimation-server/cmd/teemo/run"
	"github.com/teemo-ai/estimation-server/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ESTIMATE"

var Cmd = &cobra.Command{
	Use:   "teemo",
	Short: "ML training resource estimation service",
	Long:  "An HTTP service that estimates ML training resource needs (GPU, CPU, RAM, time, cost, carbon) from a model configuration, using Gemini",

	// Runs before this command and any subcommands
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		viper.SetEnvPrefix(envPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(
			`-`, `_`,
			`.`, `_`,
		))
		viper.AutomaticEnv()

		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		return config.LoadEnvFile(viper.GetString("env_file"))
	},
}

func Execute() {
	if err := Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pflags := Cmd.PersistentFlags()

	pflags.String("config-file", "", "Path to the config file")
	pflags.String("env-file", "", "Path to the env file")

	viper.BindPFlag("config_file", pflags.Lookup("config-file"))
	viper.BindPFlag("env_file", pflags.Lookup("env-file"))

	Cmd.AddCommand(run.Cmd, estimate.Cmd)
	Cmd.CompletionOptions.HiddenDefaultCmd = true
}
