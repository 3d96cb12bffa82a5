package model

// InvitationResponse is the tri-state reply to a pending invitation.
type InvitationResponse string

const (
	ResponsePending  InvitationResponse = "Pending"
	ResponseAccepted InvitationResponse = "Accepted"
	ResponseDeclined InvitationResponse = "Declined"
)

// OrgInvitation is one row of GET /organizations/{id}/invitations: an
// invitation sent by the organization, keyed by the invited user.
// Status and UserResponse mirror the service's pending_invitations columns:
// status flips to true when the invitee accepts, user_response records the
// invitee's answer and stays null while the invitation is unanswered.
type OrgInvitation struct {
	UserID       int64  `json:"user_id"`
	UserEmail    string `json:"user_email"`
	Status       bool   `json:"status"`
	UserResponse *bool  `json:"user_response"`
}

// Response collapses the two columns into the tri-state reply.
func (i *OrgInvitation) Response() InvitationResponse {
	return responseOf(i.Status, i.UserResponse)
}

// UserInvitation is one row of GET /users/{id}/invitations: an invitation
// as seen by the invited user, keyed by the inviting organization.
type UserInvitation struct {
	OrganizationID   int64  `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	Status           bool   `json:"status"`
	UserResponse     *bool  `json:"user_response"`
}

// Response collapses the two columns into the tri-state reply.
func (i *UserInvitation) Response() InvitationResponse {
	return responseOf(i.Status, i.UserResponse)
}

func responseOf(status bool, userResponse *bool) InvitationResponse {
	switch {
	case userResponse != nil && *userResponse && status:
		return ResponseAccepted
	case userResponse != nil && !*userResponse && !status:
		return ResponseDeclined
	default:
		return ResponsePending
	}
}
