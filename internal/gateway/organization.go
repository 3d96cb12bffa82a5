package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/orgdesk/orgdesk/internal/model"
)

// Organization fetches one organization with its member lists.
// GET /organization/{id}.
func (c *Client) Organization(ctx context.Context, orgID int64) (*model.Organization, error) {
	const op = "organization"

	resp, err := c.newRequest(ctx).
		Get("/organization/" + strconv.FormatInt(orgID, 10))
	if err != nil {
		return nil, netErr(op, err)
	}

	var org model.Organization
	if err := decode(op, resp, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// CreateOrganization creates an organization owned by the signed-in user,
// optionally with co-owners by email. POST /organizations.
func (c *Client) CreateOrganization(ctx context.Context, name string, ownerEmails []string) (string, error) {
	const op = "create organization"

	body := map[string]any{"name": name}
	if len(ownerEmails) > 0 {
		body["owners"] = ownerEmails
	}

	resp, err := c.newRequest(ctx).
		SetBody(body).
		Post("/organizations")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusCreated)
}

// UpdateOrganization renames an organization and/or adds co-owners by email.
// A user promoted to owner is removed from the admin and employee lists by
// the service. PUT /organizations/{id}.
func (c *Client) UpdateOrganization(ctx context.Context, orgID int64, name string, ownerEmails []string) (string, error) {
	const op = "update organization"

	body := map[string]any{}
	if name != "" {
		body["name"] = name
	}
	if len(ownerEmails) > 0 {
		body["owners"] = ownerEmails
	}

	resp, err := c.newRequest(ctx).
		SetBody(body).
		Put("/organizations/" + strconv.FormatInt(orgID, 10))
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}

// PromoteEmployee moves a user from the employees list to the admins list.
// POST /move-employee-to-admin.
func (c *Client) PromoteEmployee(ctx context.Context, orgID, userID int64) (string, error) {
	const op = "promote employee"

	resp, err := c.newRequest(ctx).
		SetBody(map[string]int64{"user_id": userID, "org_id": orgID}).
		Post("/move-employee-to-admin")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}

// DemoteAdmin moves a user from the admins list to the employees list.
// POST /move-admin-to-employee.
func (c *Client) DemoteAdmin(ctx context.Context, orgID, userID int64) (string, error) {
	const op = "demote admin"

	resp, err := c.newRequest(ctx).
		SetBody(map[string]int64{"user_id": userID, "org_id": orgID}).
		Post("/move-admin-to-employee")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}

// RemoveEmployee removes a user from the employees list.
// DELETE /remove-employee?user_id&org_id.
func (c *Client) RemoveEmployee(ctx context.Context, orgID, userID int64) (string, error) {
	const op = "remove employee"

	resp, err := c.newRequest(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		SetQueryParam("org_id", strconv.FormatInt(orgID, 10)).
		Delete("/remove-employee")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}

// RemoveAdmin removes a user from the admins list.
// DELETE /remove-admin?user_id&org_id.
func (c *Client) RemoveAdmin(ctx context.Context, orgID, userID int64) (string, error) {
	const op = "remove admin"

	resp, err := c.newRequest(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		SetQueryParam("org_id", strconv.FormatInt(orgID, 10)).
		Delete("/remove-admin")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}
