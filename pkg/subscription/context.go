package subscription

import (
	"context"

	"github.com/google/uuid"
)

type accountIDCtxKey struct{}

func SetAccountIDToContext(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDCtxKey{}, id)
}

func GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDCtxKey{}).(uuid.UUID)
	return id, ok
}

// AccountIDFromContext returns the account ID stored in ctx or ErrAccountIDNotInContext.
func AccountIDFromContext(ctx context.Context) (uuid.UUID, error) {
	id, ok := GetAccountIDFromContext(ctx)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrAccountIDNotInContext
	}
	return id, nil
}
