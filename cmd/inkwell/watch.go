package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/inkwell/pkg/watch"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault for changes",
	Long: `Watch reports every change to the vault's storage keys as it lands
on disk, until interrupted. Useful to follow mutations made by another
process.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Open to validate the directory before watching it.
		app := openApp(context.Background())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		watcher := watch.New(app.Path(), watchPattern, slog.Default())
		events, err := watcher.Start(ctx)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Printf("Watching %s (pattern %q). Ctrl-C to stop.\n", app.Path(), watchPattern)
		for event := range events {
			fmt.Printf("%s  %-6s %s\n", event.Timestamp.Format("15:04:05"), event.Type, event.Key)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "*", "Glob pattern over storage keys")
}
