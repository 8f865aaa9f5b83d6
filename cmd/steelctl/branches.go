package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "Manage branches",
}

var branchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all branches",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		// served from the local cache when the backend is unreachable
		branches, err := application.Branches()
		if err != nil {
			return err
		}
		for _, b := range branches {
			stock := "-"
			if b.IsStockEnabled {
				stock = "stock"
			}
			fmt.Printf("%-24s  %-6s  %s\n", b.ID, stock, b.Name)
		}
		return nil
	},
}

var branchesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a branch (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		branch, err := application.API().CreateBranch(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created branch %s (%s).\n", branch.Name, branch.ID)
		return nil
	},
}

var branchesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a branch (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := application.API().DeleteBranch(args[0]); err != nil {
			return err
		}
		fmt.Println("Branch deleted.")
		return nil
	},
}

func init() {
	branchesCmd.AddCommand(branchesListCmd)
	branchesCmd.AddCommand(branchesCreateCmd)
	branchesCmd.AddCommand(branchesDeleteCmd)
}
