package client

import (
	"github.com/metforge/steelctl/internal/domain"
)

// Branches lists all branches.
func (c *Client) Branches() ([]domain.Branch, error) {
	var branches []domain.Branch
	err := c.get("/api/branches", &branches)
	return branches, err
}

// CreateBranch adds a branch by name.
func (c *Client) CreateBranch(name string) (domain.Branch, error) {
	var branch domain.Branch
	err := c.post("/api/branches", map[string]string{"name": name}, &branch)
	return branch, err
}

// DeleteBranch removes a branch.
func (c *Client) DeleteBranch(id string) error {
	return c.delete("/api/branches/" + id)
}
