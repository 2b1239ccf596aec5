package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Start a local session",
	Long: `Login fabricates a user from the email's local part and makes it the
current session. Credentials are not verified against anything.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp(context.Background())

		user, err := app.Sessions().Login(context.Background(), loginEmail, loginPassword)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Welcome back, %s!\n", user.Username)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (kept local, never verified)")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
