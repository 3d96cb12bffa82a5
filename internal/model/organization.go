package model

// Organization as returned by GET /organization/{id}. Owners, admins and
// employees are disjoint in practice; the service owns that rule, the
// client only derives roles from membership.
type Organization struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Owners    []Member `json:"owners"`
	Admins    []Member `json:"admins"`
	Employees []Member `json:"employees"`
}

// UserOrganizations is the GET /user/organizations payload: organizations
// the user owns and organizations the user works at (as admin or employee).
type UserOrganizations struct {
	Owning  []Organization `json:"organizations_owning"`
	Working []Organization `json:"organizations_working"`
}

// Role of a user within one organization context.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleNone     Role = "none"
)

// HasOwner reports whether the given user id is in the owners list.
func (o *Organization) HasOwner(userID int64) bool {
	return containsMember(o.Owners, userID)
}

// HasAdmin reports whether the given user id is in the admins list.
func (o *Organization) HasAdmin(userID int64) bool {
	return containsMember(o.Admins, userID)
}

// HasEmployee reports whether the given user id is in the employees list.
func (o *Organization) HasEmployee(userID int64) bool {
	return containsMember(o.Employees, userID)
}

func containsMember(members []Member, userID int64) bool {
	for _, m := range members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
