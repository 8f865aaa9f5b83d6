package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/metforge/steelctl/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var cuttingFile string

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List and manage orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the visible orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		orders, err := application.API().Orders()
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("%-24s  %-14s  %-20s  %8.2f TL\n",
				o.ID, o.OrderStatus, o.CustomerName, o.TotalPrice)
		}
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		o, err := application.API().Order(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Order %s\n", o.ID)
		fmt.Printf("  Customer:  %s\n", o.CustomerName)
		fmt.Printf("  Status:    %s\n", o.OrderStatus)
		fmt.Printf("  From:      %s\n", o.OrderGivenBranchID)
		fmt.Printf("  Delivery:  %s\n", o.OrderDeliveryBranchID)
		fmt.Printf("  Given:     %s\n", o.OrderGivenDate)
		fmt.Printf("  Total:     %.2f TL\n", o.TotalPrice)
		fmt.Printf("  Items:     %d\n", len(o.OrderItems))
		for i, item := range o.OrderItems {
			line, _ := json.Marshal(item)
			fmt.Printf("    %d. %s\n", i+1, line)
		}
		return nil
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move an order through its workflow",
	Long: `Sets the order status. Valid statuses: Oluşturuldu, Onaylandı,
Hazır, Çıktı, İptal_Edildi.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		status := domain.OrderStatus(args[1])
		switch status {
		case domain.StatusCreated, domain.StatusApproved, domain.StatusReady,
			domain.StatusShipped, domain.StatusCancelled:
		default:
			return fmt.Errorf("unknown status %q", args[1])
		}
		o, err := application.API().UpdateOrderStatus(args[0], status)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s is now %s.\n", o.ID, o.OrderStatus)
		return nil
	},
}

var ordersCuttingCmd = &cobra.Command{
	Use:   "cutting <id>",
	Short: "Submit cutting results for an order",
	Long: `Reads cutting rows from the JSON file given with --file. The file
holds an array of objects with productId, quantity, cutLength and
totalCutWeight keys.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		data, err := os.ReadFile(cuttingFile)
		if err != nil {
			return err
		}
		var rows []domain.CuttingInfo
		if err := json.Unmarshal(data, &rows); err != nil {
			return fmt.Errorf("parse %s: %w", cuttingFile, err)
		}
		o, err := application.API().SubmitCutting(args[0], domain.OrderCutting{
			OrderID:     args[0],
			CuttingInfo: rows,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Cutting submitted, order %s is %s.\n", o.ID, o.OrderStatus)
		return nil
	},
}

func init() {
	ordersCuttingCmd.Flags().StringVarP(&cuttingFile, "file", "f", "", "JSON file with cutting rows (required)")
	ordersCuttingCmd.MarkFlagRequired("file")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersStatusCmd)
	ordersCmd.AddCommand(ordersCuttingCmd)
}
