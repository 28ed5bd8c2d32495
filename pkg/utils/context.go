package utils

import "context"

type contextKey string

const IdentityKey contextKey = "identity"

// Identity is the authenticated admin carried through a request.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func SetIdentityContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(Identity)
	return identity, ok
}
