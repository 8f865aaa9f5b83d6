package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cartQuantity     int
	cartBranchID     string
	cartCustomer     string
	cartTotalPrice   float64
	cartQuantityStep int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Build an order from stock lots",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a stock lot to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := application.Cart().Items()
		if len(items) == 0 {
			fmt.Println("Cart is empty.")
			return nil
		}
		fmt.Printf("Cart (branch %s):\n", application.Cart().BranchID())
		for _, item := range items {
			fmt.Printf("  %-20s  x%-3d  %s\n", item.ID, item.Quantity, item.Label)
		}
		return nil
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Change an item's quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Cart().UpdateQuantity(args[0], cartQuantityStep)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Cart().Remove(args[0])
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Cart().Clear()
	},
}

var cartSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Place the cart as an order",
	RunE:  runCartSubmit,
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	products, err := application.API().Products()
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.ID != args[0] {
			continue
		}
		branchID := cartBranchID
		if branchID == "" {
			// resolve the product's owning branch through its category
			cp, err := application.API().CategoryWithProducts(p.ProductCategoryID)
			if err != nil {
				return err
			}
			branchID = cp.ProductCategory.BranchID
		}
		item, err := application.Cart().Add(p, p.ProductCategoryID, branchID, cartQuantity)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (x%d) to the cart.\n", item.Label, item.Quantity)
		return nil
	}
	return fmt.Errorf("product %q not found", args[0])
}

func runCartSubmit(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	s, _ := application.Sessions().Current()
	order, err := application.Cart().ToOrder(s.BranchID, cartCustomer, cartTotalPrice)
	if err != nil {
		return err
	}
	created, err := application.API().CreateOrder(order)
	if err != nil {
		return err
	}
	if err := application.Cart().Clear(); err != nil {
		return err
	}
	fmt.Printf("Order %s placed (%s, %.2f TL).\n", created.ID, created.OrderStatus, created.TotalPrice)
	return nil
}

func init() {
	cartAddCmd.Flags().IntVarP(&cartQuantity, "quantity", "q", 1, "unit count")
	cartAddCmd.Flags().StringVarP(&cartBranchID, "branch", "b", "", "source branch (defaults to the product's branch)")

	cartUpdateCmd.Flags().IntVarP(&cartQuantityStep, "delta", "d", 1, "quantity change, may be negative")

	cartSubmitCmd.Flags().StringVarP(&cartCustomer, "customer", "c", "", "customer company name (required)")
	cartSubmitCmd.Flags().Float64VarP(&cartTotalPrice, "total", "t", 0, "agreed total price (required)")
	cartSubmitCmd.MarkFlagRequired("customer")
	cartSubmitCmd.MarkFlagRequired("total")

	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartListCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
	cartCmd.AddCommand(cartSubmitCmd)
}
