package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is just enough of the remote service for the command flows
// under test.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	reply := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer tok-abc"
	}

	mux.HandleFunc("POST /signin", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "hunter2" {
			reply(w, http.StatusUnauthorized, `{"error": "bad credentials"}`)
			return
		}
		reply(w, http.StatusOK, `{"access_token": "tok-abc"}`)
	})
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			reply(w, http.StatusUnauthorized, `{"error": "missing token"}`)
			return
		}
		reply(w, http.StatusOK, `{"id": 1, "email": "owner@acme.io"}`)
	})
	mux.HandleFunc("GET /organization/7", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{
			"id": 7, "name": "acme",
			"owners": [{"id": 1, "email": "owner@acme.io"}],
			"admins": [{"id": 2, "email": "ada@acme.io"}],
			"employees": [{"id": 4, "email": "carol@acme.io"}, {"id": 5, "email": "dan@acme.io"}]
		}`)
	})
	mux.HandleFunc("GET /organizations/7/tasks", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `[{"id": 10, "title": "ship", "completed": false}]`)
	})
	mux.HandleFunc("GET /organizations/7/invitations", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `[]`)
	})
	mux.HandleFunc("GET /user/organizations", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{
			"organizations_owning": [{"id": 7, "name": "acme"}],
			"organizations_working": [{"id": 8, "name": "globex"}]
		}`)
	})
	mux.HandleFunc("GET /users/1/invitations", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `[
			{"organization_id": 3, "organization_name": "initech", "status": false, "user_response": null}
		]`)
	})
	mux.HandleFunc("POST /organizations/3/accept-invitation", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"message": "invitation accepted"}`)
	})
	mux.HandleFunc("POST /move-employee-to-admin", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int64
		json.NewDecoder(r.Body).Decode(&body)
		if body["user_id"] == 5 {
			reply(w, http.StatusBadRequest, `{"message": "user cannot be promoted"}`)
			return
		}
		reply(w, http.StatusOK, `{"message": "employee promoted"}`)
	})
	mux.HandleFunc("PUT /complete-task/10", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"message": "task completed"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// writeConfig builds a config directory pointing the client at the fake
// server and an isolated session file.
func writeConfig(t *testing.T, serverURL string) string {
	t.Helper()

	dir := t.TempDir()
	body := fmt.Sprintf(`[server]
baseurl = %q

[session]
file = %q

[log]
output = "stderr"
level = "ERROR"
`, serverURL, filepath.Join(dir, "session"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644))
	return dir
}

func run(t *testing.T, cfgDir string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", cfgDir}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func signIn(t *testing.T, cfgDir string) {
	t.Helper()
	_, err := run(t, cfgDir, "signin", "-e", "owner@acme.io", "-p", "hunter2")
	require.NoError(t, err)
}

func TestSignInStoresCredential(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)

	out, err := run(t, cfgDir, "signin", "-e", "owner@acme.io", "-p", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, out, "signed in as owner@acme.io")

	tok, err := os.ReadFile(filepath.Join(cfgDir, "session"))
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", string(tok))
}

func TestSignInBadCredentials(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)

	_, err := run(t, cfgDir, "signin", "-e", "owner@acme.io", "-p", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad credentials")

	_, statErr := os.Stat(filepath.Join(cfgDir, "session"))
	assert.True(t, os.IsNotExist(statErr), "rejected signin must not store a credential")
}

func TestWhoamiAnonymous(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)

	out, err := run(t, cfgDir, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "anonymous")
}

func TestWhoamiSignedIn(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)
	signIn(t, cfgDir)

	out, err := run(t, cfgDir, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "owner@acme.io (user 1)")
}

func TestSignOut(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)
	signIn(t, cfgDir)

	_, err := run(t, cfgDir, "signout")
	require.NoError(t, err)

	out, err := run(t, cfgDir, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "anonymous")
}

func TestHomeRendersDashboard(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)
	signIn(t, cfgDir)

	out, err := run(t, cfgDir, "home")
	require.NoError(t, err)
	assert.Contains(t, out, "signed in as owner@acme.io")
	assert.Contains(t, out, "acme")
	assert.Contains(t, out, "globex")
	assert.Contains(t, out, "initech")
}

func TestHomeAcceptInvitation(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)
	signIn(t, cfgDir)

	out, err := run(t, cfgDir, "home", "accept", "-o", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "invitation accepted")
	// The answered invitation leaves the pending projection.
	assert.Contains(t, out, "no pending invitations")
}

func TestOrgShowRendersTabs(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)
	signIn(t, cfgDir)

	out, err := run(t, cfgDir, "org", "show", "-o", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "acme (org 7), your role: owner")
	assert.Contains(t, out, "ada@acme.io")
	assert.Contains(t, out, "carol@acme.io")
	assert.Contains(t, out, "ship")
}

func TestOrgShowSingleTab(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)
	signIn(t, cfgDir)

	out, err := run(t, cfgDir, "org", "show", "-o", "7", "--tab", "tasks")
	require.NoError(t, err)
	assert.Contains(t, out, "ship")
	assert.NotContains(t, out, "ada@acme.io")

	_, err = run(t, cfgDir, "org", "show", "-o", "7", "--tab", "bogus")
	require.Error(t, err)
}

func TestCommandsRequireSession(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)

	_, err := run(t, cfgDir, "org", "show", "-o", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestMemberPromoteOverlaysResult(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)
	signIn(t, cfgDir)

	out, err := run(t, cfgDir, "member", "promote", "-o", "7", "-u", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "employee promoted")
	// The employee leaves the employees list; the admin list stays as
	// fetched until the next full load.
	assert.NotContains(t, out, "carol@acme.io")
	assert.Contains(t, out, "ada@acme.io")
}

func TestMemberPromoteDeniedLeavesEmployee(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)
	signIn(t, cfgDir)

	_, err := run(t, cfgDir, "member", "promote", "-o", "7", "-u", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user cannot be promoted")

	// The rejection left no partial state behind: a fresh view still
	// lists the employee.
	out, err := run(t, cfgDir, "org", "show", "-o", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "dan@acme.io")
}

func TestTaskCompleteTogglesRow(t *testing.T) {
	srv := fakeAPI(t)
	cfgDir := writeConfig(t, srv.URL)
	signIn(t, cfgDir)

	out, err := run(t, cfgDir, "task", "complete", "-o", "7", "-t", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "task completed")
	assert.Contains(t, out, "[x]")
}
