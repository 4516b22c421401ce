package run

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/teemo-ai/estimation-server/internal/app"
	"github.com/teemo-ai/estimation-server/internal/config"
	"github.com/teemo-ai/estimation-server/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Start the estimation server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		application, err := app.NewApp(cfg,
			app.WithStorage(),
			app.WithEstimator(),
		)
		if err != nil {
			return fmt.Errorf("error initializing app: %w", err)
		}
		defer application.Close()

		srv, err := server.NewServer(cfg)
		if err != nil {
			return fmt.Errorf("error setting up server: %w", err)
		}
		srv.SetupRoutes(application)

		errChan := make(chan error, 1)
		go func() {
			application.Logger.Info("starting server",
				zap.String("host", cfg.Host), zap.Int("port", cfg.Port))
			errChan <- srv.Start()
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errChan:
			return err
		case sig := <-sigChan:
			application.Logger.Info("shutting down", zap.String("signal", sig.String()))
			return srv.Stop(context.Background())
		}
	},
}

func init() {
	Cmd.Flags().Int("port", config.DefaultPort, "Port to run the server on")
	Cmd.Flags().String("host", config.DefaultHost, "Host to run the server on")
	Cmd.Flags().String("environment", "development", "Environment configuration; affects default behavior")

	viper.BindPFlag("port", Cmd.Flags().Lookup("port"))
	viper.BindPFlag("host", Cmd.Flags().Lookup("host"))
	viper.BindPFlag("environment", Cmd.Flags().Lookup("environment"))
}
