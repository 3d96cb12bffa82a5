package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/orgdesk/orgdesk/internal/model"
	"github.com/orgdesk/orgdesk/internal/store"
	"github.com/orgdesk/orgdesk/internal/view"
)

func (a *app) orgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Inspect and manage organizations",
	}
	cmd.AddCommand(
		a.orgShowCmd(),
		a.orgCreateCmd(),
		a.orgUpdateCmd(),
		a.orgInviteCmd(),
		a.orgInvitationDeleteCmd(),
	)
	return cmd
}

func (a *app) orgShowCmd() *cobra.Command {
	var orgID int64
	var tab string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an organization's tasks, members and options",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := a.requireUser(ctx)
			if err != nil {
				return err
			}
			s, role, err := a.loadOrg(ctx, user, orgID)
			if err != nil {
				return err
			}

			if tab == "" {
				a.renderOrg(s, role)
				return nil
			}
			if !tabVisible(view.Tab(tab), role) {
				return errors.Errorf("no %q tab for role %s", tab, role)
			}
			fmt.Fprintf(a.out, "%s (org %d), your role: %s\n", s.Name(), s.OrgID(), role)
			a.renderTab(view.Tab(tab), s, role)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().StringVar(&tab, "tab", "", "show a single tab: tasks, employees or options")
	cmd.MarkFlagRequired("org")
	return cmd
}

func tabVisible(tab view.Tab, role model.Role) bool {
	for _, t := range view.Tabs(role) {
		if t == tab {
			return true
		}
	}
	return false
}

func (a *app) orgCreateCmd() *cobra.Command {
	var name string
	var owners []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, err := a.requireUser(ctx); err != nil {
				return err
			}
			msg, err := a.gw.CreateOrganization(ctx, name, owners)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "organization name")
	cmd.Flags().StringSliceVar(&owners, "owner", nil, "additional owner email (repeatable)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) orgUpdateCmd() *cobra.Command {
	var orgID int64
	var name string
	var owners []string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename an organization or change its owners",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := a.requireUser(ctx)
			if err != nil {
				return err
			}
			_, role, err := a.loadOrg(ctx, user, orgID)
			if err != nil {
				return err
			}
			if !view.Can(view.ActionEditOrganization, role) {
				return errors.New("only an owner can edit the organization")
			}

			msg, err := a.gw.UpdateOrganization(ctx, orgID, name, owners)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().StringVarP(&name, "name", "n", "", "new organization name")
	cmd.Flags().StringSliceVar(&owners, "owner", nil, "owner email (repeatable)")
	cmd.MarkFlagRequired("org")
	cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) orgInviteCmd() *cobra.Command {
	var orgID int64
	var email string

	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Invite a user to the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := a.requireUser(ctx)
			if err != nil {
				return err
			}
			_, role, err := a.loadOrg(ctx, user, orgID)
			if err != nil {
				return err
			}
			if !view.Can(view.ActionInvite, role) {
				return errors.New("only an owner can send invitations")
			}

			msg, err := a.gw.Invite(ctx, orgID, email)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().StringVarP(&email, "email", "e", "", "invitee email")
	cmd.MarkFlagRequired("org")
	cmd.MarkFlagRequired("email")
	return cmd
}

func (a *app) orgInvitationDeleteCmd() *cobra.Command {
	var orgID, userID int64

	cmd := &cobra.Command{
		Use:   "invitation-delete",
		Short: "Withdraw a pending invitation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := a.requireUser(ctx)
			if err != nil {
				return err
			}
			s, role, err := a.loadOrg(ctx, user, orgID)
			if err != nil {
				return err
			}
			if !view.Can(view.ActionDeleteInvitation, role) {
				return errors.New("only an owner can withdraw invitations")
			}

			msg, err := a.gw.DeletePendingInvitation(ctx, orgID, userID)
			if err != nil {
				return err
			}
			s.Apply(store.Patch{OrgID: orgID, Scope: store.ScopeInvitations, EntityID: userID, Kind: store.MarkRemoved})

			fmt.Fprintln(a.out, msg)
			a.renderInvitations(s, role)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().Int64VarP(&userID, "user", "u", 0, "invited user id")
	cmd.MarkFlagRequired("org")
	cmd.MarkFlagRequired("user")
	return cmd
}
