package cart

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/metforge/steelctl/internal/domain"
)

var (
	// ErrBranchMismatch is returned when an item from a second source
	// branch is added. One order draws stock from exactly one branch.
	ErrBranchMismatch = errors.New("cart: items must come from a single branch")
	ErrEmpty          = errors.New("cart: empty")
	ErrBlankCustomer  = errors.New("cart: customer name is blank")
	ErrInvalidPrice   = errors.New("cart: total price must be positive")
)

// Item is one pending order line. OrderItem is the wire row sent to the
// backend; Label and Quantity mirror parts of it for display and editing.
type Item struct {
	ID        string                 `json:"id"`
	Label     string                 `json:"label"`
	Quantity  int                    `json:"quantity"`
	BranchID  string                 `json:"branchId"`
	OrderItem map[string]interface{} `json:"orderItem"`
}

// Saver persists the cart between runs.
type Saver interface {
	SaveCart(v interface{}) error
	LoadCart(out interface{}) (bool, error)
	ClearCart() error
}

// Cart collects order lines before they are submitted as one order. It is
// safe for concurrent use and writes through to the saver on every change.
type Cart struct {
	saver Saver
	node  *snowflake.Node

	mu    sync.Mutex
	items []Item
}

// New creates a cart backed by saver and reloads any persisted content.
// saver may be nil for a purely in-memory cart.
func New(saver Saver) (*Cart, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("cart: init id node: %w", err)
	}
	c := &Cart{saver: saver, node: node}
	if saver != nil {
		if _, err := saver.LoadCart(&c.items); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a product line. The first item fixes the cart's source
// branch; lines from any other branch are rejected.
func (c *Cart) Add(p domain.Product, categoryID, branchID string, quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, fmt.Errorf("cart: quantity must be positive, got %d", quantity)
	}

	row := map[string]interface{}{
		"productCategoryId": categoryID,
		"diameter":          p.Diameter,
		"length":            p.Length,
		"weight":            p.Weight,
		"quantity":          quantity,
		"wastageLength":     0,
		"wastageWeight":     0,
	}
	for k, v := range p.Fields {
		if v == nil || v == "" {
			continue
		}
		row[k] = v
	}

	item := Item{
		ID:        c.node.Generate().String(),
		Label:     fmt.Sprintf("%dmm - %vmm", p.Diameter, p.Length),
		Quantity:  quantity,
		BranchID:  branchID,
		OrderItem: row,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) > 0 && c.items[0].BranchID != branchID {
		return Item{}, ErrBranchMismatch
	}
	c.items = append(c.items, item)
	return item, c.persist()
}

// UpdateQuantity adjusts an item's quantity by delta. Quantities that drop
// to zero or below remove the item. Unknown IDs are a no-op.
func (c *Cart) UpdateQuantity(id string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		q := c.items[i].Quantity + delta
		if q <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = q
			c.items[i].OrderItem["quantity"] = q
		}
		return c.persist()
	}
	return nil
}

// Remove deletes an item by ID. Unknown IDs are a no-op.
func (c *Cart) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

// Items returns a copy of the current lines. The OrderItem maps are copied
// too, so callers cannot edit cart state through the returned rows.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	for i, item := range c.items {
		row := make(map[string]interface{}, len(item.OrderItem))
		for k, v := range item.OrderItem {
			row[k] = v
		}
		item.OrderItem = row
		out[i] = item
	}
	return out
}

// Len reports the number of lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// BranchID returns the source branch fixed by the first item, or empty for
// an empty cart.
func (c *Cart) BranchID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return ""
	}
	return c.items[0].BranchID
}

// Clear empties the cart and its persisted copy.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	if c.saver == nil {
		return nil
	}
	return c.saver.ClearCart()
}

// ToOrder assembles the submit payload. givenBranchID is the ordering
// account's branch; the delivery branch is the cart's source branch.
func (c *Cart) ToOrder(givenBranchID, customerName string, totalPrice float64) (domain.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return domain.Order{}, ErrBlankCustomer
	}
	if totalPrice <= 0 {
		return domain.Order{}, ErrInvalidPrice
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return domain.Order{}, ErrEmpty
	}

	rows := make([]map[string]interface{}, 0, len(c.items))
	for _, item := range c.items {
		rows = append(rows, item.OrderItem)
	}
	return domain.Order{
		CustomerName:          customerName,
		OrderGivenBranchID:    givenBranchID,
		OrderDeliveryBranchID: c.items[0].BranchID,
		OrderGivenDate:        time.Now().Format(time.RFC3339),
		OrderStatus:           domain.StatusCreated,
		OrderItems:            rows,
		TotalPrice:            totalPrice,
	}, nil
}

// persist writes through to the saver. Callers hold c.mu.
func (c *Cart) persist() error {
	if c.saver == nil {
		return nil
	}
	return c.saver.SaveCart(c.items)
}
