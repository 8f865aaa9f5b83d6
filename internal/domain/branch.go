package domain

// Branch module related models

// Branch is a company location. Stock management can be switched off per
// branch, in which case its accounts may only place and track orders.
type Branch struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	IsStockEnabled bool   `json:"isStockEnabled"`
}

// Account is a login principal. BranchId is empty for admin accounts.
type Account struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"` // only set on register requests
	AccountType string `json:"accountType"`        // ADMIN or BRANCH
	BranchID    string `json:"branchId"`
}

// AuthRequest is the login payload.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest creates a branch account bound to an existing branch.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	BranchID string `json:"branchId"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token       string `json:"token"`
	BranchID    string `json:"branchId"`
	AccountType string `json:"accountType"`
}
