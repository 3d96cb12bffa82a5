package store

import (
	"github.com/orgdesk/orgdesk/internal/model"
	"github.com/orgdesk/orgdesk/pkg/statemachine"
)

// UserInvitationEntity is an inbox entry plus its local lifecycle state.
type UserInvitationEntity struct {
	model.UserInvitation
	State EntityState
}

// Inbox holds the signed-in user's own invitations, keyed by inviting
// organization. Like OrgStore it is load-then-patch: Respond overlays a
// confirmed accept or decline, nothing is deleted locally.
type Inbox struct {
	userID  int64
	entries []UserInvitationEntity
}

// NewInbox returns an empty inbox.
func NewInbox() *Inbox {
	return &Inbox{}
}

// Load replaces the inbox with a freshly fetched snapshot for the user.
func (b *Inbox) Load(userID int64, invitations []model.UserInvitation) {
	b.userID = userID
	b.entries = make([]UserInvitationEntity, 0, len(invitations))
	for _, inv := range invitations {
		b.entries = append(b.entries, UserInvitationEntity{UserInvitation: inv, State: StateActive})
	}
}

// UserID returns the id of the user the inbox was loaded for.
func (b *Inbox) UserID() int64 { return b.userID }

// Entries returns the underlying collection, flags included.
func (b *Inbox) Entries() []UserInvitationEntity { return b.entries }

// Respond overlays a confirmed accept or decline onto the entry for the
// given organization. The response chart guards the transition: an entry
// that already reached a terminal status admits no further response.
// Unknown organization ids are no-ops; the entry stays in the collection
// either way.
func (b *Inbox) Respond(orgID int64, accepted bool) bool {
	for i := range b.entries {
		if b.entries[i].OrganizationID != orgID {
			continue
		}

		target := statemachine.InvitationDeclined
		if accepted {
			target = statemachine.InvitationAccepted
		}
		m := statemachine.NewInvitationStateMachineFrom(invitationStatus(b.entries[i].Response()))
		if err := m.TransitTo(target); err != nil {
			return false
		}

		b.entries[i].Status = accepted
		resp := accepted
		b.entries[i].UserResponse = &resp
		return true
	}
	return false
}

// invitationStatus maps the wire-level tri-state onto the response chart.
func invitationStatus(r model.InvitationResponse) statemachine.InvitationStatus {
	switch r {
	case model.ResponseAccepted:
		return statemachine.InvitationAccepted
	case model.ResponseDeclined:
		return statemachine.InvitationDeclined
	default:
		return statemachine.InvitationPending
	}
}

// Pending projects the entries still awaiting a response, in collection
// order.
func (b *Inbox) Pending() []UserInvitationEntity {
	out := make([]UserInvitationEntity, 0, len(b.entries))
	for _, e := range b.entries {
		if !e.State.terminal() && e.Response() == model.ResponsePending {
			out = append(out, e)
		}
	}
	return out
}
