package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/orgdesk/orgdesk/internal/store"
	"github.com/orgdesk/orgdesk/internal/view"
)

func (a *app) memberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage an organization's members",
	}
	cmd.AddCommand(a.memberPromoteCmd(), a.memberDemoteCmd(), a.memberRemoveCmd())
	return cmd
}

// memberAction is the shared promote/demote/remove flow: load the
// organization, gate on the derived role, call the remote operation, and
// overlay the confirmed result onto the origin list. Promoted and demoted
// members do not appear in their destination list until the next full
// fetch.
func (a *app) memberAction(
	ctx context.Context,
	orgID, userID int64,
	action view.Action,
	scope store.Scope,
	kind store.PatchKind,
	call func(ctx context.Context, orgID, userID int64) (string, error),
) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}
	s, role, err := a.loadOrg(ctx, user, orgID)
	if err != nil {
		return err
	}
	if !view.Can(action, role) {
		return errors.Errorf("role %s may not %s members", role, action)
	}

	if !s.Begin(scope, userID) {
		return errors.Errorf("another command for member %d is still in flight", userID)
	}
	defer s.End(scope, userID)

	msg, err := call(ctx, orgID, userID)
	if err != nil {
		return err
	}
	s.Apply(store.Patch{OrgID: orgID, Scope: scope, EntityID: userID, Kind: kind})

	fmt.Fprintln(a.out, msg)
	a.renderMembers(s, role)
	return nil
}

func (a *app) memberPromoteCmd() *cobra.Command {
	var orgID, userID int64

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Promote an employee to admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.memberAction(cmd.Context(), orgID, userID,
				view.ActionPromote, store.ScopeEmployees, store.MarkPromoted,
				a.gw.PromoteEmployee)
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().Int64VarP(&userID, "user", "u", 0, "employee user id")
	cmd.MarkFlagRequired("org")
	cmd.MarkFlagRequired("user")
	return cmd
}

func (a *app) memberDemoteCmd() *cobra.Command {
	var orgID, userID int64

	cmd := &cobra.Command{
		Use:   "demote",
		Short: "Demote an admin to employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.memberAction(cmd.Context(), orgID, userID,
				view.ActionDemote, store.ScopeAdmins, store.MarkDemoted,
				a.gw.DemoteAdmin)
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().Int64VarP(&userID, "user", "u", 0, "admin user id")
	cmd.MarkFlagRequired("org")
	cmd.MarkFlagRequired("user")
	return cmd
}

func (a *app) memberRemoveCmd() *cobra.Command {
	var orgID, userID int64
	var admin bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a member from the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, call := store.ScopeEmployees, a.gw.RemoveEmployee
			if admin {
				scope, call = store.ScopeAdmins, a.gw.RemoveAdmin
			}
			return a.memberAction(cmd.Context(), orgID, userID,
				view.ActionRemoveMember, scope, store.MarkRemoved, call)
		},
	}
	cmd.Flags().Int64VarP(&orgID, "org", "o", 0, "organization id")
	cmd.Flags().Int64VarP(&userID, "user", "u", 0, "member user id")
	cmd.Flags().BoolVar(&admin, "admin", false, "the member is an admin")
	cmd.MarkFlagRequired("org")
	cmd.MarkFlagRequired("user")
	return cmd
}
