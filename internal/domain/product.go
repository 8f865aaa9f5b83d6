package domain

import "time"

// Stock module related models

// ProductType is a product template. RequiredFields maps field names to
// their specs; values are either a bare datatype string (legacy records) or
// an object with datatype and required keys.
type ProductType struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	RequiredFields map[string]interface{} `json:"requiredFields"`
}

// ProductCategory instantiates a product type for one branch. FinalFields is
// the merged field set the branch's products must carry.
type ProductCategory struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	ProductTypeID string                 `json:"productTypeId"`
	BranchID      string                 `json:"branchId"`
	FinalFields   map[string]interface{} `json:"finalFields"`
}

// Product is one stock lot. The fixed columns cover the common steel
// measurements; everything category-specific lives in Fields.
type Product struct {
	ID                string                 `json:"id"`
	ProductCategoryID string                 `json:"productCategoryId"`
	Weight            float64                `json:"weight"`
	Length            float64                `json:"length"`
	PurchasePrice     float64                `json:"purchasePrice"`
	Stock             int                    `json:"stock"`
	Diameter          int                    `json:"diameter"`
	Fields            map[string]interface{} `json:"fields"`
	KgPrice           float64                `json:"kgPrice"`
	IsActive          bool                   `json:"isActive"`
	CreatedAt         time.Time              `json:"createdAt"`
	PurchaseLength    float64                `json:"purchaseLength"`
	PurchaseWeight    float64                `json:"purchaseWeight"`
	PurchaseStock     int                    `json:"purchaseStock"`
}

// CategoryProducts bundles a category with its product list, as returned by
// the per-branch category listing.
type CategoryProducts struct {
	ProductCategory ProductCategory `json:"productCategories"`
	Products        []Product       `json:"products"`
}
