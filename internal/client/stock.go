package client

import (
	"github.com/metforge/steelctl/internal/domain"
)

// Products lists the stock visible to the current account.
func (c *Client) Products() ([]domain.Product, error) {
	var products []domain.Product
	err := c.get("/api/stock", &products)
	return products, err
}

// CreateProduct adds a stock lot. The price pair is completed locally before
// sending, see CompletePrices.
func (c *Client) CreateProduct(p domain.Product) (domain.Product, error) {
	CompletePrices(&p)
	var created domain.Product
	err := c.post("/api/stock", p, &created)
	return created, err
}

// UpdateProduct replaces a stock lot's mutable columns.
func (c *Client) UpdateProduct(id string, p domain.Product) (domain.Product, error) {
	CompletePrices(&p)
	var updated domain.Product
	err := c.put("/api/stock/"+id, p, &updated)
	return updated, err
}

// DeleteProduct removes a stock lot.
func (c *Client) DeleteProduct(id string) error {
	return c.delete("/api/stock/" + id)
}

// CategoriesByBranch lists the product categories owned by one branch.
func (c *Client) CategoriesByBranch(branchID string) ([]domain.ProductCategory, error) {
	var categories []domain.ProductCategory
	err := c.get("/api/stock/product-categories/"+branchID+"/branch", &categories)
	return categories, err
}

// CategoryWithProducts fetches one category together with its product list.
func (c *Client) CategoryWithProducts(id string) (domain.CategoryProducts, error) {
	var cp domain.CategoryProducts
	err := c.get("/api/stock/product-categories/"+id, &cp)
	return cp, err
}

// CreateCategory instantiates a product type for a branch.
func (c *Client) CreateCategory(pc domain.ProductCategory) (domain.ProductCategory, error) {
	var created domain.ProductCategory
	err := c.post("/api/stock/product-categories", pc, &created)
	return created, err
}

// ProductTypes lists the product templates.
func (c *Client) ProductTypes() ([]domain.ProductType, error) {
	var types []domain.ProductType
	err := c.get("/api/stock/product-types", &types)
	return types, err
}

// CompletePrices derives the missing half of the purchasePrice/kgPrice pair:
// kgPrice = purchasePrice / stock / weight. When both are zero the product is
// left untouched.
func CompletePrices(p *domain.Product) {
	switch {
	case p.PurchasePrice != 0:
		if p.Stock != 0 && p.Weight != 0 {
			p.KgPrice = p.PurchasePrice / float64(p.Stock) / p.Weight
		}
	case p.KgPrice != 0:
		p.PurchasePrice = p.KgPrice * p.Weight * float64(p.Stock)
	}
}
