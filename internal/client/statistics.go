package client

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/metforge/steelctl/internal/domain"
)

// PurchasedRows groups purchase statistics by branch name, then by category
// name.
type PurchasedRows map[string]map[string][]domain.PurchasedProductStat

// SoldRows groups sold statistics by branch name, then customer, then
// category name.
type SoldRows map[string]map[string]map[string][]domain.SoldProductStat

type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func newDateRange(start, end time.Time) dateRange {
	return dateRange{
		StartDate: start.Format(time.RFC3339),
		EndDate:   end.Format(time.RFC3339),
	}
}

// decodeStats maps a nested statistics payload onto a typed structure. The
// backend aggregates in loosely typed maps, so numbers arrive as whatever
// JSON made of them; the weakly typed decode absorbs that.
func decodeStats(in, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("api: decode statistics: %w", err)
	}
	return nil
}

// PurchasedStats returns the purchase rows between the two dates, grouped by
// branch and category.
func (c *Client) PurchasedStats(start, end time.Time) (PurchasedRows, error) {
	var raw map[string]interface{}
	if err := c.post("/api/statistics/purchased-products-between-dates", newDateRange(start, end), &raw); err != nil {
		return nil, err
	}
	rows := PurchasedRows{}
	if err := decodeStats(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PurchasedTotals returns the purchase sums between the two dates.
func (c *Client) PurchasedTotals(start, end time.Time) (domain.PurchaseTotals, error) {
	var totals domain.PurchaseTotals
	err := c.post("/api/statistics/purchased-products-between-dates/total", newDateRange(start, end), &totals)
	return totals, err
}

// SoldStats returns the sold rows between the two dates, grouped by branch,
// customer and category.
func (c *Client) SoldStats(start, end time.Time) (SoldRows, error) {
	var raw map[string]interface{}
	if err := c.post("/api/statistics/sold-products-between-dates", newDateRange(start, end), &raw); err != nil {
		return nil, err
	}
	rows := SoldRows{}
	if err := decodeStats(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SoldTotals returns the sold sums between the two dates.
func (c *Client) SoldTotals(start, end time.Time) (domain.SoldTotals, error) {
	var totals domain.SoldTotals
	err := c.post("/api/statistics/sold-products-between-dates/total", newDateRange(start, end), &totals)
	return totals, err
}

// MainPageStats returns the dashboard counters.
func (c *Client) MainPageStats() (domain.MainPageStats, error) {
	var stats domain.MainPageStats
	err := c.get("/api/statistics/main-page", &stats)
	return stats, err
}
