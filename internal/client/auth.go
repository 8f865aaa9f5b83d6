package client

import (
	"github.com/metforge/steelctl/internal/domain"
)

// Login authenticates with username and password and returns the issued
// token together with the account's branch binding.
func (c *Client) Login(username, password string) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := c.post("/api/auth/login", domain.AuthRequest{
		Username: username,
		Password: password,
	}, &resp)
	return resp, err
}

// Register creates a branch account and logs it in.
func (c *Client) Register(username, password, branchID string) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := c.post("/api/auth/register", domain.RegisterRequest{
		Username: username,
		Password: password,
		BranchID: branchID,
	}, &resp)
	return resp, err
}

// Accounts lists all accounts. Admin only.
func (c *Client) Accounts() ([]domain.Account, error) {
	var accounts []domain.Account
	err := c.get("/api/auth/branches", &accounts)
	return accounts, err
}

// DeleteAccount removes an account. Admin only.
func (c *Client) DeleteAccount(id string) error {
	return c.delete("/api/auth/accounts/" + id)
}
