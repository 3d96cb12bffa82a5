package model

// User is the signed-in account as returned by GET /user.
type User struct {
	ID                   int64   `json:"id"`
	Email                string  `json:"email"`
	OrganizationsOwning  []int64 `json:"organizations_owning,omitempty"`
	OrganizationsWorking []int64 `json:"organizations_working,omitempty"`
}

// Member is a user as it appears inside an organization's member lists.
type Member struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
