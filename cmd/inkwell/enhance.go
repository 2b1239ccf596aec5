package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/inkwell"
	"github.com/aretw0/inkwell/pkg/core"
)

var enhanceKey string

var enhanceCmd = &cobra.Command{
	Use:   "enhance [id]",
	Short: "Rewrite a note's content with AI",
	Long: `Enhance sends a note's content to the configured chat-completion
provider and replaces it with the rewrite. The original content is
discarded; a note can be enhanced only once. Requires an API key,
either via --key or stored with 'inkwell key set'.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		var opts []inkwell.Option
		if enhanceKey != "" {
			opts = append(opts, inkwell.WithAPIKey(enhanceKey))
		}
		app := openApp(ctx, opts...)

		id := args[0]
		if err := app.Notes().Enhance(ctx, id); err != nil {
			switch {
			case errors.Is(err, core.ErrMissingCredential):
				fmt.Println("Error: no API key. Pass --key or run 'inkwell key set'.")
			case errors.Is(err, core.ErrAlreadyEnhanced):
				fmt.Printf("Note %s is already enhanced.\n", id)
			default:
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Note enhanced: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(enhanceCmd)
	enhanceCmd.Flags().StringVar(&enhanceKey, "key", "", "Provider API key (overrides the stored one)")
}
