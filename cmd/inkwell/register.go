package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	registerEmail    string
	registerUsername string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a local identity",
	Long: `Register fabricates a local user and makes it the current session,
overwriting any prior one. No server is involved.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(context.Background())

		user, err := app.Sessions().Register(context.Background(), registerEmail, registerUsername, registerPassword)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Welcome, %s!\n", user.Username)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Display name")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password (kept local, never verified)")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
}
