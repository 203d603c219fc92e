package ports

import "context"

// TokenRefresher re-authenticates every credential and rewrites the token
// store. It blocks until the new list is written or the refresh fails.
type TokenRefresher interface {
	RefreshAllTokens(ctx context.Context) error
}
