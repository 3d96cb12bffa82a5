package session

import (
	"context"

	"github.com/orgdesk/orgdesk/internal/gateway"
	"github.com/orgdesk/orgdesk/internal/model"
	"github.com/orgdesk/orgdesk/pkg/log"
)

// Session is the resolved identity for this run. A nil User means the
// session is anonymous.
type Session struct {
	User *model.User
}

// Anonymous reports whether no identity could be resolved.
func (s Session) Anonymous() bool {
	return s.User == nil
}

// Resolve turns the stored credential into a Session. Without a credential
// it resolves to anonymous immediately, without touching the network. With
// a credential it asks the gateway for the account; a denial or error also
// resolves to anonymous, so "session expired" and "never signed in" look
// identical to the rest of the client.
func Resolve(ctx context.Context, store *Store, gw *gateway.Client) Session {
	if store.Token() == "" {
		return Session{}
	}

	user, err := gw.CurrentUser(ctx)
	if err != nil {
		log.Debugf("session resolution failed, treating as anonymous: %v", err)
		return Session{}
	}
	return Session{User: user}
}
