package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(context.Background())

		note, ok := app.Notes().Get(args[0])
		if !ok {
			fmt.Printf("Note not found: %s\n", args[0])
			os.Exit(1)
		}

		fmt.Printf("# %s\n\n%s\n", note.Title, note.Content)
		if note.AIEnhanced {
			fmt.Printf("\n(enhanced %s)\n", note.UpdatedAt.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
