package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/inkwell"
)

var (
	verbose  bool
	vaultDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "A local-first note keeper with AI enhancement",
	Long: `Inkwell keeps your notes in a local vault directory.
Create, list, and delete notes, manage a local session, and optionally
rewrite a note's content through the OpenAI chat-completions API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultDir, "dir", "", "Vault directory (default $INKWELL_DIR, else ~/.inkwell)")
}

// resolveDir picks the vault directory: --dir, then $INKWELL_DIR, then
// ~/.inkwell.
func resolveDir() string {
	if vaultDir != "" {
		return vaultDir
	}
	if env := os.Getenv("INKWELL_DIR"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to resolve home directory", err)
	}
	return filepath.Join(home, ".inkwell")
}

// openApp opens the vault with the shared CLI options.
func openApp(ctx context.Context, opts ...inkwell.Option) *inkwell.App {
	opts = append([]inkwell.Option{inkwell.WithLogger(slog.Default())}, opts...)
	app, err := inkwell.Open(ctx, resolveDir(), opts...)
	if err != nil {
		fatal("Failed to open vault", err)
	}
	return app
}
