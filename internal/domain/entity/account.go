package entity

// AccountStatusActive is the Organizations status of a billable member account.
const AccountStatusActive = "ACTIVE"

// Account is a member account of the organization.
type Account struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status,omitempty"`
}

// IsActive reports whether the account is billable. Accounts without a status
// are treated as active.
func (a Account) IsActive() bool {
	return a.Status == "" || a.Status == AccountStatusActive
}
