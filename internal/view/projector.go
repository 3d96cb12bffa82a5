// Package view derives what to render purely from the session's role and
// the entity store. Nothing in here mutates state or talks to the network;
// commands are issued by the cli layer, which re-checks Can before every
// call, since a control that was never rendered must still not work.
package view

import (
	"github.com/orgdesk/orgdesk/internal/model"
	"github.com/orgdesk/orgdesk/internal/store"
)

// Tab is one of the organization page's sections.
type Tab string

const (
	TabTasks     Tab = "tasks"
	TabEmployees Tab = "employees"
	TabOptions   Tab = "options"
)

// Tabs lists the sections visible to the given role. The options section
// (invitations, task creation, organization settings) is owner-only.
func Tabs(role model.Role) []Tab {
	tabs := []Tab{TabTasks, TabEmployees}
	if role == model.RoleOwner {
		tabs = append(tabs, TabOptions)
	}
	return tabs
}

// Action is a command a rendered control can issue.
type Action string

const (
	ActionPromote          Action = "promote"
	ActionDemote           Action = "demote"
	ActionRemoveMember     Action = "remove-member"
	ActionInvite           Action = "invite"
	ActionDeleteInvitation Action = "delete-invitation"
	ActionEditOrganization Action = "edit-organization"
	ActionAddTask          Action = "add-task"
	ActionCompleteTask     Action = "complete-task"
	ActionUncheckTask      Action = "uncheck-task"
	ActionDeleteTask       Action = "delete-task"
)

// Can is the single gating rule for every control. Completing a task is
// open to owners and admins; everything destructive or administrative is
// owner-only, unchecking included.
func Can(action Action, role model.Role) bool {
	switch action {
	case ActionCompleteTask:
		return role == model.RoleOwner || role == model.RoleAdmin
	case ActionPromote, ActionDemote, ActionRemoveMember,
		ActionInvite, ActionDeleteInvitation, ActionEditOrganization,
		ActionAddTask, ActionUncheckTask, ActionDeleteTask:
		return role == model.RoleOwner
	default:
		return false
	}
}

// MemberRow is one rendered member line. Index is 1-based over the
// filtered view; ID is the stable row key.
type MemberRow struct {
	Index   int
	ID      int64
	Email   string
	Actions []Action
}

// AdminRows projects the active admins with the controls the role allows.
func AdminRows(s *store.OrgStore, role model.Role) []MemberRow {
	return memberRows(s.ActiveAdmins(), role, ActionDemote)
}

// EmployeeRows projects the active employees with the controls the role
// allows.
func EmployeeRows(s *store.OrgStore, role model.Role) []MemberRow {
	return memberRows(s.ActiveEmployees(), role, ActionPromote)
}

func memberRows(members []store.MemberEntity, role model.Role, move Action) []MemberRow {
	rows := make([]MemberRow, 0, len(members))
	for i, m := range members {
		row := MemberRow{Index: i + 1, ID: m.ID, Email: m.Email}
		if Can(move, role) {
			row.Actions = append(row.Actions, move)
		}
		if Can(ActionRemoveMember, role) {
			row.Actions = append(row.Actions, ActionRemoveMember)
		}
		rows = append(rows, row)
	}
	return rows
}

// InvitationRow is one rendered invitation line on the options tab.
type InvitationRow struct {
	Index    int
	UserID   int64
	Email    string
	Response model.InvitationResponse
	Actions  []Action
}

// InvitationRows projects the organization's sent invitations.
func InvitationRows(s *store.OrgStore, role model.Role) []InvitationRow {
	invitations := s.ActiveInvitations()
	rows := make([]InvitationRow, 0, len(invitations))
	for i, inv := range invitations {
		row := InvitationRow{
			Index:    i + 1,
			UserID:   inv.UserID,
			Email:    inv.UserEmail,
			Response: inv.Response(),
		}
		if Can(ActionDeleteInvitation, role) {
			row.Actions = append(row.Actions, ActionDeleteInvitation)
		}
		rows = append(rows, row)
	}
	return rows
}

// TaskRow is one rendered task line. Done reflects the local toggle
// overlay, not the stale fetched metadata.
type TaskRow struct {
	Index       int
	ID          int64
	Title       string
	Description string
	Done        bool
	CompletedAt string
	CompletedBy string
	InFlight    bool
	Actions     []Action
}

// TaskRows projects the active tasks with the toggle each role is allowed
// to issue. A row whose own command is still in flight gets no toggle at
// all; that is the documented answer to issuing a second command against
// the same entity while the first is suspended.
func TaskRows(s *store.OrgStore, role model.Role) []TaskRow {
	tasks := s.ActiveTasks()
	rows := make([]TaskRow, 0, len(tasks))
	for i, t := range tasks {
		row := TaskRow{
			Index:       i + 1,
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Done:        t.Toggled,
			CompletedAt: t.CompletedAt,
			CompletedBy: t.CompletedByEmail,
			InFlight:    s.InFlight(store.ScopeTasks, t.ID),
		}
		if !row.InFlight {
			if t.Toggled {
				if Can(ActionUncheckTask, role) {
					row.Actions = append(row.Actions, ActionUncheckTask)
				}
			} else if Can(ActionCompleteTask, role) {
				row.Actions = append(row.Actions, ActionCompleteTask)
			}
		}
		if Can(ActionDeleteTask, role) {
			row.Actions = append(row.Actions, ActionDeleteTask)
		}
		rows = append(rows, row)
	}
	return rows
}
