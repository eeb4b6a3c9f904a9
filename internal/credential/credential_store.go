// Package credential holds the bearer credentials of console sessions. It is
// the only shared mutable state of the console: written at login, read by
// the upstream HTTP policy, cleared on logout and on any upstream 401.
package credential

import (
	"context"
	"errors"

	"go-guardconsole/internal/shared/contextutil"
)

const (
	KeyToken       = "token"
	KeyAuthToken   = "authToken"
	KeyAccessToken = "access_token"
)

// Keys lists the storage keys in lookup priority order. The two later keys
// come from earlier storage schemes and are still honoured.
var Keys = []string{KeyToken, KeyAuthToken, KeyAccessToken}

var ErrNoSession = errors.New("credential: no session in context")

// Store is scoped by the session id carried in the context. Reads outside a
// session find nothing; writes outside a session fail with ErrNoSession.
//
//go:generate mockgen -source=credential_store.go -destination=mock/credential_store_mock.go -package=mock
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Lookup returns the first credential present, honouring Keys order.
func Lookup(ctx context.Context, s Store) (string, bool, error) {
	for _, key := range Keys {
		v, ok, err := s.Get(ctx, key)
		if err != nil {
			return "", false, err
		}
		if ok && v != "" {
			return v, true, nil
		}
	}
	return "", false, nil
}

// ClearAll removes every known credential key of the session.
func ClearAll(ctx context.Context, s Store) error {
	return s.Delete(ctx, Keys...)
}

func sessionFrom(ctx context.Context) string {
	return contextutil.GetSessionID(ctx)
}
