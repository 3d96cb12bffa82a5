package store

import (
	"testing"

	"github.com/orgdesk/orgdesk/internal/model"
)

func fixtureOrg() *model.Organization {
	return &model.Organization{
		ID:   7,
		Name: "acme",
		Owners: []model.Member{
			{ID: 1, Email: "owner@acme.io"},
		},
		Admins: []model.Member{
			{ID: 2, Email: "ada@acme.io"},
			{ID: 3, Email: "bob@acme.io"},
		},
		Employees: []model.Member{
			{ID: 4, Email: "carol@acme.io"},
			{ID: 5, Email: "dan@acme.io"},
			{ID: 6, Email: "eve@acme.io"},
		},
	}
}

func fixtureTasks() []model.Task {
	return []model.Task{
		{ID: 10, Title: "ship", Completed: false},
		{ID: 11, Title: "review", Completed: true, CompletedByEmail: "ada@acme.io", CompletedAt: "02 Mar 2026"},
		{ID: 12, Title: "deploy", Completed: false},
	}
}

func loadFixture(t *testing.T) *OrgStore {
	t.Helper()
	s := NewOrgStore()
	s.Load(fixtureOrg(), nil, fixtureTasks())
	return s
}

func TestLoadPreservesServerOrder(t *testing.T) {
	s := loadFixture(t)

	employees := s.ActiveEmployees()
	want := []int64{4, 5, 6}
	if len(employees) != len(want) {
		t.Fatalf("ActiveEmployees() = %d entries, want %d", len(employees), len(want))
	}
	for i, id := range want {
		if employees[i].ID != id {
			t.Errorf("ActiveEmployees()[%d].ID = %d, want %d", i, employees[i].ID, id)
		}
	}
}

func TestToggledSeededFromFetchedCompletion(t *testing.T) {
	s := loadFixture(t)

	tasks := s.Tasks()
	if tasks[0].Toggled {
		t.Errorf("task %d seeded toggled, want untoggled", tasks[0].ID)
	}
	if !tasks[1].Toggled {
		t.Errorf("task %d seeded untoggled, want toggled", tasks[1].ID)
	}
}

func TestMarkRemovedHidesWithoutDeleting(t *testing.T) {
	s := loadFixture(t)

	if !s.Apply(Patch{OrgID: 7, Scope: ScopeEmployees, EntityID: 5, Kind: MarkRemoved}) {
		t.Fatal("Apply(MarkRemoved) = false, want true")
	}

	if got := len(s.Employees()); got != 3 {
		t.Errorf("underlying collection shrank to %d, want 3", got)
	}
	active := s.ActiveEmployees()
	if len(active) != 2 {
		t.Fatalf("ActiveEmployees() = %d entries, want 2", len(active))
	}
	for _, e := range active {
		if e.ID == 5 {
			t.Error("removed employee still projected")
		}
	}
	// Surviving entries keep their relative order.
	if active[0].ID != 4 || active[1].ID != 6 {
		t.Errorf("active order = [%d %d], want [4 6]", active[0].ID, active[1].ID)
	}
}

func TestMarkRemovedIdempotent(t *testing.T) {
	s := loadFixture(t)
	p := Patch{OrgID: 7, Scope: ScopeAdmins, EntityID: 2, Kind: MarkRemoved}

	s.Apply(p)
	s.Apply(p)

	if got := len(s.ActiveAdmins()); got != 1 {
		t.Errorf("ActiveAdmins() = %d entries after repeat patch, want 1", got)
	}
	if s.Admins()[0].State != StateRemoved {
		t.Errorf("state = %s, want %s", s.Admins()[0].State, StateRemoved)
	}
}

func TestPromoteHidesFromOriginOnly(t *testing.T) {
	s := loadFixture(t)

	s.Apply(Patch{OrgID: 7, Scope: ScopeEmployees, EntityID: 4, Kind: MarkPromoted})

	for _, e := range s.ActiveEmployees() {
		if e.ID == 4 {
			t.Error("promoted employee still in active employees")
		}
	}
	// The admin list does not change until the next full load.
	if got := len(s.ActiveAdmins()); got != 2 {
		t.Errorf("ActiveAdmins() = %d entries, want 2", got)
	}

	// A fresh fetch reflecting the move resolves the gap.
	org := fixtureOrg()
	org.Admins = append(org.Admins, model.Member{ID: 4, Email: "carol@acme.io"})
	org.Employees = org.Employees[1:]
	s.Load(org, nil, fixtureTasks())

	if got := len(s.ActiveAdmins()); got != 3 {
		t.Errorf("ActiveAdmins() after reload = %d entries, want 3", got)
	}
	if got := len(s.ActiveEmployees()); got != 2 {
		t.Errorf("ActiveEmployees() after reload = %d entries, want 2", got)
	}
}

func TestDemoteHidesFromOriginOnly(t *testing.T) {
	s := loadFixture(t)

	s.Apply(Patch{OrgID: 7, Scope: ScopeAdmins, EntityID: 3, Kind: MarkDemoted})

	if got := len(s.ActiveAdmins()); got != 1 {
		t.Errorf("ActiveAdmins() = %d entries, want 1", got)
	}
	if got := len(s.ActiveEmployees()); got != 3 {
		t.Errorf("ActiveEmployees() = %d entries, want 3", got)
	}
}

func TestToggleCompletionRoundTrip(t *testing.T) {
	s := loadFixture(t)
	p := Patch{OrgID: 7, Scope: ScopeTasks, EntityID: 10, Kind: ToggleCompletion}

	s.Apply(p)
	if !s.Tasks()[0].Toggled {
		t.Fatal("first toggle did not flip")
	}
	s.Apply(p)
	if s.Tasks()[0].Toggled {
		t.Error("second toggle did not restore the original value")
	}
	// Fetched metadata is untouched by toggles.
	if s.Tasks()[0].Completed {
		t.Error("fetched Completed changed without a reload")
	}
}

func TestTaskDelete(t *testing.T) {
	s := loadFixture(t)

	s.Apply(Patch{OrgID: 7, Scope: ScopeTasks, EntityID: 11, Kind: MarkRemoved})

	active := s.ActiveTasks()
	if len(active) != 2 {
		t.Fatalf("ActiveTasks() = %d entries, want 2", len(active))
	}
	if active[0].ID != 10 || active[1].ID != 12 {
		t.Errorf("active order = [%d %d], want [10 12]", active[0].ID, active[1].ID)
	}
	if got := len(s.Tasks()); got != 3 {
		t.Errorf("underlying collection shrank to %d, want 3", got)
	}
}

func TestStaleOrgPatchDropped(t *testing.T) {
	s := loadFixture(t)

	if s.Apply(Patch{OrgID: 99, Scope: ScopeEmployees, EntityID: 4, Kind: MarkRemoved}) {
		t.Fatal("Apply accepted a patch for another organization")
	}
	if got := len(s.ActiveEmployees()); got != 3 {
		t.Errorf("ActiveEmployees() = %d entries after stale patch, want 3", got)
	}
}

func TestUnknownEntityPatchIsNoOp(t *testing.T) {
	s := loadFixture(t)

	if s.Apply(Patch{OrgID: 7, Scope: ScopeTasks, EntityID: 404, Kind: MarkRemoved}) {
		t.Error("Apply reported success for an unknown entity id")
	}
}

func TestInvitationWithdrawal(t *testing.T) {
	yes := true
	s := NewOrgStore()
	s.Load(fixtureOrg(), []model.OrgInvitation{
		{UserID: 20, UserEmail: "new@acme.io", Status: false, UserResponse: nil},
		{UserID: 21, UserEmail: "late@acme.io", Status: true, UserResponse: &yes},
	}, nil)

	s.Apply(Patch{OrgID: 7, Scope: ScopeInvitations, EntityID: 20, Kind: MarkRemoved})

	active := s.ActiveInvitations()
	if len(active) != 1 {
		t.Fatalf("ActiveInvitations() = %d entries, want 1", len(active))
	}
	if active[0].UserID != 21 {
		t.Errorf("surviving invitation = user %d, want 21", active[0].UserID)
	}
}

func TestInFlightGuard(t *testing.T) {
	s := loadFixture(t)

	if !s.Begin(ScopeTasks, 10) {
		t.Fatal("Begin refused an idle entity")
	}
	if s.Begin(ScopeTasks, 10) {
		t.Error("Begin accepted a second command for an in-flight entity")
	}
	if !s.InFlight(ScopeTasks, 10) {
		t.Error("InFlight = false while a command is suspended")
	}
	// Same id in another scope is a different entity.
	if !s.Begin(ScopeEmployees, 10) {
		t.Error("Begin refused an idle entity in another scope")
	}

	s.End(ScopeTasks, 10)
	if s.InFlight(ScopeTasks, 10) {
		t.Error("InFlight = true after End")
	}
	if !s.Begin(ScopeTasks, 10) {
		t.Error("Begin refused a settled entity")
	}
}

func TestLoadResetsInFlight(t *testing.T) {
	s := loadFixture(t)
	s.Begin(ScopeTasks, 10)

	s.Load(fixtureOrg(), nil, fixtureTasks())

	if s.InFlight(ScopeTasks, 10) {
		t.Error("in-flight marks survived a reload")
	}
}
