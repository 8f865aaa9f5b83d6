package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metforge/steelctl/internal/session"
)

var (
	authUsername string
	authPassword string
	authBranchID string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Log in, log out and manage accounts",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.Sessions().Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := application.Sessions().Current()
		if !ok {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("Username:     %s\n", s.Username)
		fmt.Printf("Account type: %s\n", s.AccountType)
		if s.BranchID != "" {
			fmt.Printf("Branch:       %s\n", s.BranchID)
		}
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a branch account and log in as it",
	RunE:  runRegister,
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		accounts, err := application.API().Accounts()
		if err != nil {
			return err
		}
		for _, a := range accounts {
			fmt.Printf("%-24s  %-8s  %-10s  %s\n", a.ID, a.AccountType, a.BranchID, a.Username)
		}
		return nil
	},
}

var deleteAccountCmd = &cobra.Command{
	Use:   "delete-account <id>",
	Short: "Delete an account (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := application.API().DeleteAccount(args[0]); err != nil {
			return err
		}
		fmt.Println("Account deleted.")
		return nil
	},
}

func runLogin(cmd *cobra.Command, args []string) error {
	resp, err := application.API().Login(authUsername, authPassword)
	if err != nil {
		return err
	}
	err = application.Sessions().Establish(session.Session{
		Token:       resp.Token,
		BranchID:    resp.BranchID,
		AccountType: session.AccountType(resp.AccountType),
		Username:    authUsername,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s).\n", authUsername, resp.AccountType)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	resp, err := application.API().Register(authUsername, authPassword, authBranchID)
	if err != nil {
		return err
	}
	err = application.Sessions().Establish(session.Session{
		Token:       resp.Token,
		BranchID:    resp.BranchID,
		AccountType: session.AccountType(resp.AccountType),
		Username:    authUsername,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered and logged in as %s.\n", authUsername)
	return nil
}

func init() {
	loginCmd.Flags().StringVarP(&authUsername, "username", "u", "", "account username (required)")
	loginCmd.Flags().StringVarP(&authPassword, "password", "p", "", "account password (required)")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVarP(&authUsername, "username", "u", "", "account username (required)")
	registerCmd.Flags().StringVarP(&authPassword, "password", "p", "", "account password (required)")
	registerCmd.Flags().StringVarP(&authBranchID, "branch", "b", "", "branch the account belongs to (required)")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("branch")

	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(accountsCmd)
	authCmd.AddCommand(deleteAccountCmd)
}
