package session

// AccountType distinguishes the two kinds of ERP accounts.
type AccountType string

const (
	AccountAdmin  AccountType = "ADMIN"
	AccountBranch AccountType = "BRANCH"
)

// Session is the authenticated client state. It is created on a successful
// login or registration, persisted to durable storage, and destroyed on
// logout or detected token expiry. At most one session is live per client.
type Session struct {
	Token       string      `json:"token"`
	BranchID    string      `json:"branchId"`
	AccountType AccountType `json:"accountType"`
	Username    string      `json:"username"`
}

// IsAdmin reports whether the session belongs to an administrator account.
func (s Session) IsAdmin() bool {
	return s.AccountType == AccountAdmin
}

// CanManageStock reports whether the session may modify the stock of the
// given branch: admins may manage every branch, branch accounts only their
// own.
func (s Session) CanManageStock(branchID string) bool {
	if s.IsAdmin() {
		return true
	}
	return s.BranchID == branchID
}
