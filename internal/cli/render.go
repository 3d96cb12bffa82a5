package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/orgdesk/orgdesk/internal/model"
	"github.com/orgdesk/orgdesk/internal/store"
	"github.com/orgdesk/orgdesk/internal/view"
)

func (a *app) renderDashboard(d view.Dashboard) {
	if d.Anonymous {
		fmt.Fprintln(a.out, "not signed in, run `orgdesk signin` or `orgdesk signup`")
		return
	}

	fmt.Fprintf(a.out, "signed in as %s\n", d.Email)

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	if len(d.Owning) > 0 {
		fmt.Fprintln(w, "\nOWNING\tID\tNAME")
		for _, o := range d.Owning {
			fmt.Fprintf(w, "%d\t%d\t%s\n", o.Index, o.ID, o.Name)
		}
	}
	if len(d.Working) > 0 {
		fmt.Fprintln(w, "\nWORKING\tID\tNAME")
		for _, o := range d.Working {
			fmt.Fprintf(w, "%d\t%d\t%s\n", o.Index, o.ID, o.Name)
		}
	}
	if len(d.Invitations) > 0 {
		fmt.Fprintln(w, "\nINVITATIONS\tORG\tNAME")
		for _, inv := range d.Invitations {
			fmt.Fprintf(w, "%d\t%d\t%s\n", inv.Index, inv.OrganizationID, inv.OrganizationName)
		}
	}
	w.Flush()
}

func (a *app) renderInbox(b *store.Inbox) {
	pending := b.Pending()
	if len(pending) == 0 {
		fmt.Fprintln(a.out, "no pending invitations")
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tORG\tNAME")
	for i, inv := range pending {
		fmt.Fprintf(w, "%d\t%d\t%s\n", i+1, inv.OrganizationID, inv.OrganizationName)
	}
	w.Flush()
}

func (a *app) renderOrg(s *store.OrgStore, role model.Role) {
	fmt.Fprintf(a.out, "%s (org %d), your role: %s\n", s.Name(), s.OrgID(), role)
	for _, tab := range view.Tabs(role) {
		a.renderTab(tab, s, role)
	}
}

func (a *app) renderTab(tab view.Tab, s *store.OrgStore, role model.Role) {
	switch tab {
	case view.TabTasks:
		a.renderTasks(s, role)
	case view.TabEmployees:
		a.renderMembers(s, role)
	case view.TabOptions:
		a.renderInvitations(s, role)
	}
}

func (a *app) renderMembers(s *store.OrgStore, role model.Role) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)

	fmt.Fprintln(w, "\nOWNERS\tID\tEMAIL")
	for i, o := range s.Owners() {
		fmt.Fprintf(w, "%d\t%d\t%s\n", i+1, o.ID, o.Email)
	}

	fmt.Fprintln(w, "\nADMINS\tID\tEMAIL\tACTIONS")
	for _, row := range view.AdminRows(s, role) {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", row.Index, row.ID, row.Email, joinActions(row.Actions))
	}

	fmt.Fprintln(w, "\nEMPLOYEES\tID\tEMAIL\tACTIONS")
	for _, row := range view.EmployeeRows(s, role) {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", row.Index, row.ID, row.Email, joinActions(row.Actions))
	}
	w.Flush()
}

func (a *app) renderInvitations(s *store.OrgStore, role model.Role) {
	rows := view.InvitationRows(s, role)
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "\nno invitations")
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nINVITATIONS\tUSER\tEMAIL\tRESPONSE")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", row.Index, row.UserID, row.Email, row.Response)
	}
	w.Flush()
}

func (a *app) renderTasks(s *store.OrgStore, role model.Role) {
	rows := view.TaskRows(s, role)
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "\nno tasks")
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nTASKS\tID\tTITLE\tDONE\tCOMPLETED\tACTIONS")
	for _, row := range rows {
		done := " "
		if row.Done {
			done = "x"
		}
		completed := ""
		if row.Done && row.CompletedAt != "" {
			completed = row.CompletedAt
			if row.CompletedBy != "" {
				completed += " by " + row.CompletedBy
			}
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t[%s]\t%s\t%s\n",
			row.Index, row.ID, row.Title, done, completed, joinActions(row.Actions))
	}
	w.Flush()
}

func joinActions(actions []view.Action) string {
	if len(actions) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, string(a))
	}
	return strings.Join(parts, ",")
}
