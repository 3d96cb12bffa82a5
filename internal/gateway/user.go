package gateway

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/orgdesk/orgdesk/internal/model"
)

// SignUp registers a new account. POST /signup.
func (c *Client) SignUp(ctx context.Context, email, password string) (string, error) {
	const op = "signup"

	resp, err := c.newRequest(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/signup")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusCreated)
}

// SignIn exchanges credentials for an access token. POST /signin.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	const op = "signin"

	resp, err := c.newRequest(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/signin")
	if err != nil {
		return "", netErr(op, err)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := decode(op, resp, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// CurrentUser resolves the stored credential to an account. GET /user.
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	const op = "current user"

	resp, err := c.newRequest(ctx).Get("/user")
	if err != nil {
		return nil, netErr(op, err)
	}

	var user model.User
	if err := decode(op, resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserOrganizations lists the organizations the signed-in user owns and
// works at. GET /user/organizations.
func (c *Client) UserOrganizations(ctx context.Context) (*model.UserOrganizations, error) {
	const op = "user organizations"

	resp, err := c.newRequest(ctx).Get("/user/organizations")
	if err != nil {
		return nil, netErr(op, err)
	}

	var orgs model.UserOrganizations
	if err := decode(op, resp, &orgs); err != nil {
		return nil, err
	}
	return &orgs, nil
}

// UsersByID fetches user records in bulk. GET /users?user_ids=csv.
func (c *Client) UsersByID(ctx context.Context, ids []int64) ([]model.User, error) {
	const op = "users by id"

	csv := make([]string, 0, len(ids))
	for _, id := range ids {
		csv = append(csv, strconv.FormatInt(id, 10))
	}

	resp, err := c.newRequest(ctx).
		SetQueryParam("user_ids", strings.Join(csv, ",")).
		Get("/users")
	if err != nil {
		return nil, netErr(op, err)
	}

	var users []model.User
	if err := decode(op, resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserInvitations lists invitations addressed to the given user.
// GET /users/{id}/invitations.
func (c *Client) UserInvitations(ctx context.Context, userID int64) ([]model.UserInvitation, error) {
	const op = "user invitations"

	resp, err := c.newRequest(ctx).
		Get("/users/" + strconv.FormatInt(userID, 10) + "/invitations")
	if err != nil {
		return nil, netErr(op, err)
	}

	var invitations []model.UserInvitation
	if err := decode(op, resp, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}
