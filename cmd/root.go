package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathanglassman/paas-product-page/internal/application"
	"github.com/jonathanglassman/paas-product-page/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "paas-product-page",
	Short: "GOV.UK PaaS product page: public forms turned into support tickets",
	RunE:  runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	app, err := application.New(cfg)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}
