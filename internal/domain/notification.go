package domain

// Notification is raised by order status changes and targets the delivery
// branch (or the admin account).
type Notification struct {
	ID               string `json:"id"`
	OrderID          string `json:"orderId"`
	Message          string `json:"message"`
	AccountID        string `json:"accountId"`
	DeliveryBranchID string `json:"deliveryBranchId"`
	CreatedAt        string `json:"createdAt"`
	IsRead           bool   `json:"isRead"`
}
