package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/orgdesk/orgdesk/internal/model"
)

// OrganizationInvitations lists the invitations an organization has sent.
// GET /organizations/{id}/invitations.
func (c *Client) OrganizationInvitations(ctx context.Context, orgID int64) ([]model.OrgInvitation, error) {
	const op = "organization invitations"

	resp, err := c.newRequest(ctx).
		Get("/organizations/" + strconv.FormatInt(orgID, 10) + "/invitations")
	if err != nil {
		return nil, netErr(op, err)
	}

	var invitations []model.OrgInvitation
	if err := decode(op, resp, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

// Invite sends an employment invitation to the given email.
// POST /organizations/{id}/invite.
func (c *Client) Invite(ctx context.Context, orgID int64, email string) (string, error) {
	const op = "invite"

	resp, err := c.newRequest(ctx).
		SetBody(map[string]string{"email": email}).
		Post("/organizations/" + strconv.FormatInt(orgID, 10) + "/invite")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusCreated)
}

// AcceptInvitation accepts the signed-in user's pending invitation from the
// given organization. POST /organizations/{id}/accept-invitation.
func (c *Client) AcceptInvitation(ctx context.Context, orgID int64) (string, error) {
	const op = "accept invitation"

	resp, err := c.newRequest(ctx).
		Post("/organizations/" + strconv.FormatInt(orgID, 10) + "/accept-invitation")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}

// DeclineInvitation declines the signed-in user's pending invitation from
// the given organization. POST /organizations/{id}/decline-invitation.
func (c *Client) DeclineInvitation(ctx context.Context, orgID int64) (string, error) {
	const op = "decline invitation"

	resp, err := c.newRequest(ctx).
		Post("/organizations/" + strconv.FormatInt(orgID, 10) + "/decline-invitation")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}

// DeletePendingInvitation withdraws an invitation the organization sent.
// DELETE /delete-pending-invitation?user_id&org_id.
func (c *Client) DeletePendingInvitation(ctx context.Context, orgID, userID int64) (string, error) {
	const op = "delete pending invitation"

	resp, err := c.newRequest(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		SetQueryParam("org_id", strconv.FormatInt(orgID, 10)).
		Delete("/delete-pending-invitation")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}
