package store

import "github.com/orgdesk/orgdesk/internal/model"

// EntityState is the tagged lifecycle of a fetched entity overlaid with
// confirmed command results. Terminal states hide the entity from active
// projections without deleting it from the underlying collection, so
// display order and indices stay stable while the next full fetch is
// pending.
type EntityState string

const (
	StateActive   EntityState = "ACTIVE"
	StateRemoved  EntityState = "REMOVED"
	StatePromoted EntityState = "PROMOTED"
	StateDemoted  EntityState = "DEMOTED"
)

// terminal reports whether the entity has left its origin list.
func (s EntityState) terminal() bool {
	return s != StateActive
}

// Scope names the collection a patch addresses. Member ids and task ids
// live in different id spaces, so the entity id alone is ambiguous.
type Scope string

const (
	ScopeEmployees   Scope = "employees"
	ScopeAdmins      Scope = "admins"
	ScopeInvitations Scope = "invitations"
	ScopeTasks       Scope = "tasks"
)

// PatchKind is the set of confirmed command results a store accepts.
type PatchKind string

const (
	MarkRemoved      PatchKind = "mark_removed"
	MarkPromoted     PatchKind = "mark_promoted"
	MarkDemoted      PatchKind = "mark_demoted"
	ToggleCompletion PatchKind = "toggle_completion"
)

// Patch is one confirmed mutation keyed by entity id. OrgID pins the patch
// to the organization it was issued under; a patch that arrives after the
// store has loaded a different organization is a stale write and is
// dropped.
type Patch struct {
	OrgID    int64
	Scope    Scope
	EntityID int64
	Kind     PatchKind
}

// MemberEntity is a member row plus its local lifecycle state.
type MemberEntity struct {
	model.Member
	State EntityState
}

// InvitationEntity is a sent invitation plus its local lifecycle state.
// State only tracks withdrawal; the tri-state response lives in the
// embedded record and is owned by the server.
type InvitationEntity struct {
	model.OrgInvitation
	State EntityState
}

// TaskEntity is a task row plus its local overlay. Toggled starts equal to
// the fetched Completed value and flips on each confirmed toggle; the
// completion metadata stays as fetched until the next full load.
type TaskEntity struct {
	model.Task
	Toggled bool
	State   EntityState
}
