package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	createTitle   string
	createContent string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Long:  `Create a note with the given title and content and persist it to the vault.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(context.Background())

		note, err := app.Notes().Create(context.Background(), createTitle, createContent)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Note created: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title")
	createCmd.Flags().StringVar(&createContent, "content", "", "Note content")
	createCmd.MarkFlagRequired("title")
	createCmd.MarkFlagRequired("content")
}
