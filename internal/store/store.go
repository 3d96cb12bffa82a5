package store

import (
	"github.com/orgdesk/orgdesk/internal/model"
	"github.com/orgdesk/orgdesk/pkg/log"
)

// OrgStore is the in-memory representation of one organization: member
// lists, sent invitations and tasks, each overlaid with local lifecycle
// state. Entities enter through Load (a full fetch) and are mutated only
// by Apply with a server-confirmed patch; nothing is ever deleted locally.
//
// The store never talks to the network and never retries anything: a
// failed command simply produces no patch, leaving the pre-action state.
type OrgStore struct {
	orgID  int64
	name   string
	owners []model.Member

	admins      []MemberEntity
	employees   []MemberEntity
	invitations []InvitationEntity
	tasks       []TaskEntity

	inflight map[flightKey]bool
}

type flightKey struct {
	Scope Scope
	ID    int64
}

// NewOrgStore returns an empty store; Load installs the first snapshot.
func NewOrgStore() *OrgStore {
	return &OrgStore{inflight: make(map[flightKey]bool)}
}

// Load replaces the store contents with a freshly fetched snapshot.
// Collection order is the server's order and is preserved until the next
// Load; patches never re-sort. Any in-flight markers from a previous
// organization are dropped.
func (s *OrgStore) Load(org *model.Organization, invitations []model.OrgInvitation, tasks []model.Task) {
	s.orgID = org.ID
	s.name = org.Name
	s.owners = append([]model.Member(nil), org.Owners...)

	s.admins = make([]MemberEntity, 0, len(org.Admins))
	for _, m := range org.Admins {
		s.admins = append(s.admins, MemberEntity{Member: m, State: StateActive})
	}
	s.employees = make([]MemberEntity, 0, len(org.Employees))
	for _, m := range org.Employees {
		s.employees = append(s.employees, MemberEntity{Member: m, State: StateActive})
	}
	s.invitations = make([]InvitationEntity, 0, len(invitations))
	for _, inv := range invitations {
		s.invitations = append(s.invitations, InvitationEntity{OrgInvitation: inv, State: StateActive})
	}
	s.tasks = make([]TaskEntity, 0, len(tasks))
	for _, t := range tasks {
		s.tasks = append(s.tasks, TaskEntity{Task: t, Toggled: t.Completed, State: StateActive})
	}

	s.inflight = make(map[flightKey]bool)
}

// OrgID returns the id of the loaded organization, zero before any Load.
func (s *OrgStore) OrgID() int64 { return s.orgID }

// Name returns the loaded organization's name.
func (s *OrgStore) Name() string { return s.name }

// Owners returns the owner list as fetched.
func (s *OrgStore) Owners() []model.Member { return s.owners }

// Admins returns the underlying admin collection, flags included.
func (s *OrgStore) Admins() []MemberEntity { return s.admins }

// Employees returns the underlying employee collection, flags included.
func (s *OrgStore) Employees() []MemberEntity { return s.employees }

// Invitations returns the underlying invitation collection, flags included.
func (s *OrgStore) Invitations() []InvitationEntity { return s.invitations }

// Tasks returns the underlying task collection, flags included.
func (s *OrgStore) Tasks() []TaskEntity { return s.tasks }

// Apply overlays one confirmed command result onto the store. It reports
// whether anything changed. It is a no-op, never an error, when the
// patch is stale (wrong organization), the entity id is unknown, or the
// same terminal patch was already applied. Only ToggleCompletion is
// deliberately non-idempotent: each confirmed toggle flips the overlay.
func (s *OrgStore) Apply(p Patch) bool {
	if p.OrgID != s.orgID {
		log.Debugf("dropping stale patch for org %d, store holds org %d", p.OrgID, s.orgID)
		return false
	}

	switch p.Scope {
	case ScopeEmployees:
		return applyMemberPatch(s.employees, p, StatePromoted)
	case ScopeAdmins:
		return applyMemberPatch(s.admins, p, StateDemoted)
	case ScopeInvitations:
		return s.applyInvitationPatch(p)
	case ScopeTasks:
		return s.applyTaskPatch(p)
	default:
		return false
	}
}

// applyMemberPatch handles removal plus the list's move-out state
// (promotion for employees, demotion for admins). A confirmed move marks
// the entity out of its origin list only; the destination list is not
// touched until the next full Load. The projection gap is deliberate and
// matches the service being the single source of truth for membership.
func applyMemberPatch(list []MemberEntity, p Patch, moved EntityState) bool {
	for i := range list {
		if list[i].ID != p.EntityID {
			continue
		}
		switch p.Kind {
		case MarkRemoved:
			if list[i].State == StateRemoved {
				return false
			}
			list[i].State = StateRemoved
			return true
		case MarkPromoted, MarkDemoted:
			if list[i].State == moved {
				return false
			}
			list[i].State = moved
			return true
		}
		return false
	}
	return false
}

func (s *OrgStore) applyInvitationPatch(p Patch) bool {
	if p.Kind != MarkRemoved {
		return false
	}
	for i := range s.invitations {
		if s.invitations[i].UserID != p.EntityID {
			continue
		}
		if s.invitations[i].State == StateRemoved {
			return false
		}
		s.invitations[i].State = StateRemoved
		return true
	}
	return false
}

func (s *OrgStore) applyTaskPatch(p Patch) bool {
	for i := range s.tasks {
		if s.tasks[i].ID != p.EntityID {
			continue
		}
		switch p.Kind {
		case MarkRemoved:
			if s.tasks[i].State == StateRemoved {
				return false
			}
			s.tasks[i].State = StateRemoved
			return true
		case ToggleCompletion:
			s.tasks[i].Toggled = !s.tasks[i].Toggled
			return true
		}
		return false
	}
	return false
}

// ActiveAdmins projects the admins still in their origin list, in
// collection order.
func (s *OrgStore) ActiveAdmins() []MemberEntity {
	return activeMembers(s.admins)
}

// ActiveEmployees projects the employees still in their origin list, in
// collection order.
func (s *OrgStore) ActiveEmployees() []MemberEntity {
	return activeMembers(s.employees)
}

func activeMembers(list []MemberEntity) []MemberEntity {
	out := make([]MemberEntity, 0, len(list))
	for _, m := range list {
		if !m.State.terminal() {
			out = append(out, m)
		}
	}
	return out
}

// ActiveInvitations projects the invitations not withdrawn, in collection
// order. Accepted and declined entries stay visible; their response column
// changes, their row does not disappear.
func (s *OrgStore) ActiveInvitations() []InvitationEntity {
	out := make([]InvitationEntity, 0, len(s.invitations))
	for _, inv := range s.invitations {
		if !inv.State.terminal() {
			out = append(out, inv)
		}
	}
	return out
}

// ActiveTasks projects the tasks not deleted, in collection order.
func (s *OrgStore) ActiveTasks() []TaskEntity {
	out := make([]TaskEntity, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.State.terminal() {
			out = append(out, t)
		}
	}
	return out
}

// Begin marks an entity's own command as in flight so its control can be
// disabled until End. It reports false when a command for the same entity
// is already pending; the caller must not issue a second one.
func (s *OrgStore) Begin(scope Scope, id int64) bool {
	k := flightKey{Scope: scope, ID: id}
	if s.inflight[k] {
		return false
	}
	s.inflight[k] = true
	return true
}

// End clears the in-flight marker set by Begin.
func (s *OrgStore) End(scope Scope, id int64) {
	delete(s.inflight, flightKey{Scope: scope, ID: id})
}

// InFlight reports whether the entity has a pending command.
func (s *OrgStore) InFlight(scope Scope, id int64) bool {
	return s.inflight[flightKey{Scope: scope, ID: id}]
}
