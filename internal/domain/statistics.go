package domain

import "time"

// Statistics module related models

// PurchasedProductStat is one aggregated purchase row. The backend groups
// rows by branch and category, see client.PurchasedStats.
type PurchasedProductStat struct {
	Diameter           float64                `json:"diameter" mapstructure:"diameter"`
	PurchaseLength     float64                `json:"purchaseLength" mapstructure:"purchaseLength"`
	PurchaseWeight     float64                `json:"purchaseWeight" mapstructure:"purchaseWeight"`
	PurchasePrice      float64                `json:"purchasePrice" mapstructure:"purchasePrice"`
	PurchaseKgPrice    float64                `json:"purchaseKgPrice" mapstructure:"purchaseKgPrice"`
	PurchaseTotalPrice float64                `json:"purchaseTotalPrice" mapstructure:"purchaseTotalPrice"`
	Fields             map[string]interface{} `json:"fields" mapstructure:"fields"`
	TotalQuantity      int                    `json:"totalQuantity" mapstructure:"totalQuantity"`
	CreatedAt          time.Time              `json:"createdAt" mapstructure:"createdAt"`
}

// SoldProductStat is one sold line with its cutting figures.
type SoldProductStat struct {
	Product         Product   `json:"product" mapstructure:"product"`
	WastageWeight   float64   `json:"wastageWeight" mapstructure:"wastageWeight"`
	WastageLength   float64   `json:"wastageLength" mapstructure:"wastageLength"`
	CutLength       float64   `json:"cutLength" mapstructure:"cutLength"`
	CutQuantity     int       `json:"cutQuantity" mapstructure:"cutQuantity"`
	TotalSoldWeight float64   `json:"totalSoldWeight" mapstructure:"totalSoldWeight"`
	TotalPrice      float64   `json:"totalPrice" mapstructure:"totalPrice"`
	KgPrice         float64   `json:"kgPrice" mapstructure:"kgPrice"`
	CreatedAt       time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// PurchaseTotals sums a purchase statistics query.
type PurchaseTotals struct {
	TotalPurchasePrice    float64 `json:"totalPurchasePrice"`
	TotalPurchaseWeight   float64 `json:"totalPurchaseWeight"`
	TotalPurchaseQuantity float64 `json:"totalPurchaseQuantity"`
}

// SoldTotals sums a sold statistics query.
type SoldTotals struct {
	TotalSoldWeight    float64 `json:"totalSoldWeight"`
	TotalPrice         float64 `json:"totalPrice"`
	TotalWastageWeight float64 `json:"totalWastageWeight"`
}

// MainPageStats backs the dashboard counters.
type MainPageStats struct {
	TotalProducts      int `json:"totalProducts"`
	TotalOrders        int `json:"totalOrders"`
	TotalWaitingOrders int `json:"totalWaitingOrders"`
}
