package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session user",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(context.Background())

		user, ok := app.Sessions().Current()
		if !ok {
			fmt.Println("Not logged in.")
			return
		}

		fmt.Printf("%s <%s>\n", user.Username, user.Email)
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
