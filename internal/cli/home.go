package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/orgdesk/orgdesk/internal/model"
	"github.com/orgdesk/orgdesk/internal/store"
	"github.com/orgdesk/orgdesk/internal/view"
	"github.com/orgdesk/orgdesk/pkg/safe"
)

func (a *app) homeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show your organizations and pending invitations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := a.requireUser(ctx)
			if err != nil {
				return err
			}
			// The two collections are independent, fetch them in parallel.
			var (
				wg          sync.WaitGroup
				orgs        *model.UserOrganizations
				invitations []model.UserInvitation
				orgsErr     error
				invErr      error
			)
			wg.Add(2)
			safe.Go(func() {
				defer wg.Done()
				orgs, orgsErr = a.gw.UserOrganizations(ctx)
			})
			safe.Go(func() {
				defer wg.Done()
				invitations, invErr = a.gw.UserInvitations(ctx, user.ID)
			})
			wg.Wait()
			if orgsErr != nil {
				return orgsErr
			}
			if invErr != nil {
				return invErr
			}

			inbox := store.NewInbox()
			inbox.Load(user.ID, invitations)

			a.renderDashboard(view.ProjectDashboard(user, orgs, inbox))
			return nil
		},
	}

	cmd.AddCommand(a.invitationRespondCmd("accept", true), a.invitationRespondCmd("decline", false))
	return cmd
}

// invitationRespondCmd answers one of the user's own invitations. The
// inbox overlay is only applied after the server confirms, so a rejected
// response leaves the invitation pending.
func (a *app) invitationRespondCmd(verb string, accepted bool) *cobra.Command {
	var orgID int64

	cmd := &cobra.Command{
		Use:   verb,
		Short: fmt.Sprintf("%s an invitation", verb),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := a.requireUser(ctx)
			if err != nil {
				return err
			}
			invitations, err := a.gw.UserInvitations(ctx, user.ID)
			if err != nil {
				return err
			}

			inbox := store.NewInbox()
			inbox.Load(user.ID, invitations)

			var msg string
			if accepted {
				msg, err = a.gw.AcceptInvitation(ctx, orgID)
			} else {
				msg, err = a.gw.DeclineInvitation(ctx, orgID)
			}
			if err != nil {
				return err
			}
			inbox.Respond(orgID, accepted)

			fmt.Fprintln(a.out, msg)
			a.renderInbox(inbox)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "inviting organization id")
	cmd.MarkFlagRequired("org")
	return cmd
}
