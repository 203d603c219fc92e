package ports

import (
	"context"

	"github.com/bnema/openloop-cli/internal/domain"
)

type CredentialSource interface {
	LoadCredentials(ctx context.Context) ([]domain.Credential, error)
}

// TokenStore holds session tokens aligned by position with credentials.
// ReplaceTokens swaps the whole list; stores never mutate it in place.
type TokenStore interface {
	LoadTokens(ctx context.Context) ([]string, error)
	ReplaceTokens(ctx context.Context, tokens []string) error
}

// EgressSource returns proxy bindings aligned by position with tokens. An
// empty result means direct mode.
type EgressSource interface {
	LoadEgress(ctx context.Context) ([]domain.Egress, error)
}
