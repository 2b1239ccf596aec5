package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/inkwell/pkg/core"
)

var (
	listJSON    bool
	listPattern string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(context.Background())

		notes := app.Notes().List()

		// Filter
		var filtered []core.Note
		for _, note := range notes {
			if listPattern != "" {
				matched, err := doublestar.Match(listPattern, note.Title)
				if err != nil {
					fmt.Printf("Error: invalid pattern %q: %v\n", listPattern, err)
					os.Exit(1)
				}
				if !matched {
					continue
				}
			}
			filtered = append(filtered, note)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		for _, note := range filtered {
			marker := " "
			if note.AIEnhanced {
				marker = "*"
			}
			fmt.Printf("%s %s  %s  (%s)\n", marker, note.ID, note.Title, note.CreatedAt.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listPattern, "pattern", "", "Filter notes by title glob pattern")
}
