package session

import "github.com/orgdesk/orgdesk/internal/model"

// DeriveRole computes the user's role within one organization by
// set-membership over the member lists. It is a pure function of its
// inputs and must be recomputed whenever either changes; nothing here is
// cached across organization switches. Owner wins over admin wins over
// employee should a user ever appear in more than one list.
func DeriveRole(user *model.User, org *model.Organization) model.Role {
	if user == nil || org == nil {
		return model.RoleNone
	}
	switch {
	case org.HasOwner(user.ID):
		return model.RoleOwner
	case org.HasAdmin(user.ID):
		return model.RoleAdmin
	case org.HasEmployee(user.ID):
		return model.RoleEmployee
	default:
		return model.RoleNone
	}
}
