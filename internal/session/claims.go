package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PeekExpiry reads the expiry claim from the stored token without
// verifying the signature. It exists purely so `whoami` can say when the
// credential will lapse; authorization always stays with the server.
func PeekExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// PeekIdentity reads the subject claim (the account email) from the stored
// token without verifying the signature.
func PeekIdentity(token string) (string, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}
