package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/orgdesk/orgdesk/internal/gateway"
	"github.com/orgdesk/orgdesk/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "session"))
}

func TestStoreRoundTrip(t *testing.T) {
	s := tempStore(t)

	assert.Equal(t, "", s.Token(), "fresh store should be empty")
	assert.NoError(t, s.Save("tok-123"))
	assert.Equal(t, "tok-123", s.Token())
	assert.NoError(t, s.Clear())
	assert.Equal(t, "", s.Token(), "cleared store should be empty")
}

func TestStoreWritesTokenVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	s := NewStore(path)

	assert.NoError(t, s.Save("tok-123"))
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "tok-123", string(data), "file content must be the bare token")
}

func TestStoreRejectsEmptyToken(t *testing.T) {
	s := tempStore(t)
	assert.Error(t, s.Save(""))
}

func TestStoreClearIdempotent(t *testing.T) {
	s := tempStore(t)
	assert.NoError(t, s.Clear())
	assert.NoError(t, s.Clear())
}

func TestResolveWithoutCredentialSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	store := tempStore(t)
	gw := gateway.New(srv.URL, store)

	sess := Resolve(context.Background(), store, gw)
	assert.True(t, sess.Anonymous())
	assert.False(t, called, "anonymous resolution must not touch the network")
}

func TestResolveWithCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "email": "carol@acme.io"}`))
	}))
	defer srv.Close()

	store := tempStore(t)
	assert.NoError(t, store.Save("tok-123"))
	gw := gateway.New(srv.URL, store)

	sess := Resolve(context.Background(), store, gw)
	assert.False(t, sess.Anonymous())
	assert.Equal(t, int64(42), sess.User.ID)
	assert.Equal(t, "carol@acme.io", sess.User.Email)
}

func TestResolveDeniedCredentialIsAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "token expired"}`))
	}))
	defer srv.Close()

	store := tempStore(t)
	assert.NoError(t, store.Save("stale-token"))
	gw := gateway.New(srv.URL, store)

	sess := Resolve(context.Background(), store, gw)
	assert.True(t, sess.Anonymous(), "a denied credential resolves to anonymous")
}

func TestDeriveRolePrecedence(t *testing.T) {
	org := &model.Organization{
		Owners:    []model.Member{{ID: 1}},
		Admins:    []model.Member{{ID: 1}, {ID: 2}},
		Employees: []model.Member{{ID: 2}, {ID: 3}},
	}
	cases := []struct {
		userID int64
		want   model.Role
	}{
		{1, model.RoleOwner},
		{2, model.RoleAdmin},
		{3, model.RoleEmployee},
		{4, model.RoleNone},
	}
	for _, c := range cases {
		got := DeriveRole(&model.User{ID: c.userID}, org)
		assert.Equal(t, c.want, got, "user %d", c.userID)
	}
}

func TestDeriveRoleNilInputs(t *testing.T) {
	assert.Equal(t, model.RoleNone, DeriveRole(nil, &model.Organization{}))
	assert.Equal(t, model.RoleNone, DeriveRole(&model.User{ID: 1}, nil))
}

func TestDeriveRoleNotCachedAcrossOrgs(t *testing.T) {
	user := &model.User{ID: 5}
	owned := &model.Organization{Owners: []model.Member{{ID: 5}}}
	other := &model.Organization{Employees: []model.Member{{ID: 5}}}

	assert.Equal(t, model.RoleOwner, DeriveRole(user, owned))
	assert.Equal(t, model.RoleEmployee, DeriveRole(user, other))
	assert.Equal(t, model.RoleOwner, DeriveRole(user, owned))
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return tok
}

func TestPeekExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signedToken(t, jwt.MapClaims{"sub": "carol@acme.io", "exp": exp.Unix()})

	got, ok := PeekExpiry(tok)
	assert.True(t, ok)
	assert.True(t, got.Equal(exp), "got %v, want %v", got, exp)
}

func TestPeekIdentity(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"sub": "carol@acme.io"})

	sub, ok := PeekIdentity(tok)
	assert.True(t, ok)
	assert.Equal(t, "carol@acme.io", sub)
}

func TestPeekMalformedToken(t *testing.T) {
	if _, ok := PeekExpiry("not-a-jwt"); ok {
		t.Error("PeekExpiry accepted garbage")
	}
	if _, ok := PeekIdentity("not-a-jwt"); ok {
		t.Error("PeekIdentity accepted garbage")
	}
}
