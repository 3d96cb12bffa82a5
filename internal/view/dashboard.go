package view

import (
	"github.com/orgdesk/orgdesk/internal/model"
	"github.com/orgdesk/orgdesk/internal/store"
)

// OrgLink is one organization entry on the home page.
type OrgLink struct {
	Index int
	ID    int64
	Name  string
}

// InvitationNotice is one actionable invitation on the home page. Only
// pending invitations are projected; accepted and declined ones disappear
// the moment the response lands.
type InvitationNotice struct {
	Index            int
	OrganizationID   int64
	OrganizationName string
}

// Dashboard is the signed-in home page. An anonymous visitor gets the
// zero value with Anonymous set, which renders as the signin/signup
// prompt and nothing else.
type Dashboard struct {
	Anonymous   bool
	Email       string
	Owning      []OrgLink
	Working     []OrgLink
	Invitations []InvitationNotice
}

// ProjectDashboard builds the home page from the session, the user's
// organization lists, and the invitation inbox. Any of orgs or inbox may
// be nil for an anonymous visitor.
func ProjectDashboard(user *model.User, orgs *model.UserOrganizations, inbox *store.Inbox) Dashboard {
	if user == nil {
		return Dashboard{Anonymous: true}
	}
	d := Dashboard{Email: user.Email}
	if orgs != nil {
		d.Owning = orgLinks(orgs.Owning)
		d.Working = orgLinks(orgs.Working)
	}
	if inbox != nil {
		for i, inv := range inbox.Pending() {
			d.Invitations = append(d.Invitations, InvitationNotice{
				Index:            i + 1,
				OrganizationID:   inv.OrganizationID,
				OrganizationName: inv.OrganizationName,
			})
		}
	}
	return d
}

func orgLinks(orgs []model.Organization) []OrgLink {
	links := make([]OrgLink, 0, len(orgs))
	for i, o := range orgs {
		links = append(links, OrgLink{Index: i + 1, ID: o.ID, Name: o.Name})
	}
	return links
}
