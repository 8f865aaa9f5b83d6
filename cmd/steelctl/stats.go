package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/metforge/steelctl/internal/export"
)

var (
	statsFrom   string
	statsTo     string
	statsExport string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Purchase and sales statistics",
	Long: `Prints purchase and sales totals for a date range and optionally
writes the full per-branch breakdown to an xlsx workbook.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	from, err := time.Parse("2006-01-02", statsFrom)
	if err != nil {
		return fmt.Errorf("--from must be YYYY-MM-DD: %w", err)
	}
	to, err := time.Parse("2006-01-02", statsTo)
	if err != nil {
		return fmt.Errorf("--to must be YYYY-MM-DD: %w", err)
	}
	if to.Before(from) {
		return fmt.Errorf("--to is before --from")
	}

	api := application.API()
	pTotals, err := api.PurchasedTotals(from, to)
	if err != nil {
		return err
	}
	sTotals, err := api.SoldTotals(from, to)
	if err != nil {
		return err
	}

	fmt.Printf("%s .. %s\n", statsFrom, statsTo)
	fmt.Printf("  Toplam Alış Fiyatı:    %.2f TL\n", pTotals.TotalPurchasePrice)
	fmt.Printf("  Toplam Alış Ağırlığı:  %.2f kg\n", pTotals.TotalPurchaseWeight)
	fmt.Printf("  Toplam Alış Miktarı:   %.0f\n", pTotals.TotalPurchaseQuantity)
	fmt.Printf("  Toplam Satış Fiyatı:   %.2f TL\n", sTotals.TotalPrice)
	fmt.Printf("  Toplam Satış Ağırlığı: %.2f kg\n", sTotals.TotalSoldWeight)
	fmt.Printf("  Toplam Fire Ağırlığı:  %.2f kg\n", sTotals.TotalWastageWeight)

	if statsExport == "" {
		return nil
	}

	purchased, err := api.PurchasedStats(from, to)
	if err != nil {
		return err
	}
	sold, err := api.SoldStats(from, to)
	if err != nil {
		return err
	}
	if err := export.Statistics(statsExport, purchased, sold, pTotals, sTotals); err != nil {
		return err
	}
	fmt.Printf("Report written to %s.\n", statsExport)
	return nil
}

func init() {
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "range start, YYYY-MM-DD (required)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "range end, YYYY-MM-DD (required)")
	statsCmd.Flags().StringVarP(&statsExport, "export", "o", "", "write the breakdown to this xlsx file")
	statsCmd.MarkFlagRequired("from")
	statsCmd.MarkFlagRequired("to")
}
