package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/newsai/newsreels/pkg/newsreels/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	openRoute  string
	cfg        config.Config
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:          "newsreels",
		Short:        "Swipeable news cards",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReels(cmd.Context(), cfg, openRoute)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.DefaultPath+" if present)")
	root.Flags().StringVar(&openRoute, "open", "", "start on an article, e.g. /spor/42")

	root.AddCommand(listCmd())
	return root.ExecuteContext(ctx)
}
