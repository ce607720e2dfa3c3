package commands

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/newsai/newsreels/pkg/newsreels/deck"
	"github.com/newsai/newsreels/pkg/newsreels/router"
	"github.com/newsai/newsreels/pkg/newsreels/source"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the deck as the reels would show it, without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category == "" {
				category = cfg.Category
			}

			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
			client := source.NewClient(&http.Client{Timeout: cfg.FetchTimeout}, cfg.APIBaseURL, category, logger)

			items, err := client.FetchItems(cmd.Context())
			if err != nil {
				return err
			}

			resolver := deck.ImageResolver{BaseURL: cfg.APIBaseURL, AssetsDir: cfg.AssetsDir}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tROUTE\tTITLE\tIMAGE")
			for i, item := range items {
				route := router.Route{Category: item.Category, ID: item.ID}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, route.Path(), item.Title, resolver.Resolve(item.Image, item.Category))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only this category (default from config)")
	return cmd
}
