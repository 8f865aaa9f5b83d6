package client

import (
	"github.com/metforge/steelctl/internal/domain"
)

// Orders lists the orders visible to the current account.
func (c *Client) Orders() ([]domain.Order, error) {
	var orders []domain.Order
	err := c.get("/api/orders", &orders)
	return orders, err
}

// Order fetches one order.
func (c *Client) Order(id string) (domain.Order, error) {
	var order domain.Order
	err := c.get("/api/orders/"+id, &order)
	return order, err
}

// CreateOrder places a new order.
func (c *Client) CreateOrder(o domain.Order) (domain.Order, error) {
	var created domain.Order
	err := c.post("/api/orders", o, &created)
	return created, err
}

// UpdateOrderStatus moves an order through its workflow.
func (c *Client) UpdateOrderStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	var updated domain.Order
	err := c.put("/api/orders/"+id+"/status", domain.OrderStatusUpdate{Status: status}, &updated)
	return updated, err
}

// SubmitCutting records the cutting results for an order, which also
// deducts the cut stock.
func (c *Client) SubmitCutting(id string, cutting domain.OrderCutting) (domain.Order, error) {
	var updated domain.Order
	err := c.post("/api/orders/"+id+"/cutting", cutting, &updated)
	return updated, err
}
