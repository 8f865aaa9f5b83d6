package domain

// Order module related models

// OrderStatus values travel verbatim on the wire, Turkish labels included.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "Oluşturuldu"
	StatusApproved  OrderStatus = "Onaylandı"
	StatusReady     OrderStatus = "Hazır"
	StatusShipped   OrderStatus = "Çıktı"
	StatusCancelled OrderStatus = "İptal_Edildi"
)

// Order is a customer order moving between branches. Item rows are free-form
// maps because each category contributes its own dynamic fields.
type Order struct {
	ID                    string                   `json:"id"`
	CustomerName          string                   `json:"customerName"`
	OrderGivenBranchID    string                   `json:"orderGivenBranchId"`
	OrderDeliveryBranchID string                   `json:"orderDeliveryBranchId"`
	OrderGivenDate        string                   `json:"orderGivenDate"`
	OrderDeliveryDate     string                   `json:"orderDeliveryDate"`
	OrderStatus           OrderStatus              `json:"orderStatus"`
	OrderItems            []map[string]interface{} `json:"orderItems"`
	TotalPrice            float64                  `json:"totalPrice"`
	TotalWastageWeight    float64                  `json:"totalWastageWeight"`
	TotalWastageLength    float64                  `json:"totalWastageLength"`
}

// OrderStatusUpdate is the payload of the status transition endpoint.
type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// CuttingInfo records how one product in an order was cut for delivery.
type CuttingInfo struct {
	ProductID      string  `json:"productId"`
	Quantity       int     `json:"quantity"`
	CutLength      int     `json:"cutLength"`
	TotalCutWeight float64 `json:"totalCutWeight"`
}

// OrderCutting submits the cutting results for a whole order.
type OrderCutting struct {
	OrderID     string        `json:"orderId"`
	CuttingInfo []CuttingInfo `json:"cuttingInfo"`
}
