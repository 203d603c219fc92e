package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/bnema/openloop-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
)

const DefaultMaxWorkers = 10

// TokenRefresher logs every credential in again and replaces the token
// list. Tokens stay aligned with credential positions, so a single failed
// login fails the whole refresh and leaves the stored list untouched.
type TokenRefresher struct {
	credentials ports.CredentialSource
	tokens      ports.TokenStore
	remote      ports.RemoteService
	retry       *RetryExecutor
	maxWorkers  int
	logger      zerolog.Logger
}

var _ ports.TokenRefresher = (*TokenRefresher)(nil)

func NewTokenRefresher(
	credentials ports.CredentialSource,
	tokens ports.TokenStore,
	remote ports.RemoteService,
	retry *RetryExecutor,
	maxWorkers int,
	logger zerolog.Logger,
) *TokenRefresher {
	if maxWorkers < 1 {
		maxWorkers = DefaultMaxWorkers
	}
	if retry == nil {
		retry = DefaultRetryExecutor(nil)
	}

	return &TokenRefresher{
		credentials: credentials,
		tokens:      tokens,
		remote:      remote,
		retry:       retry,
		maxWorkers:  maxWorkers,
		logger:      logger,
	}
}

func (r *TokenRefresher) RefreshAllTokens(ctx context.Context) error {
	credentials, err := r.credentials.LoadCredentials(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	r.logger.Info().Int("accounts", len(credentials)).Msg("refreshing tokens")

	tokens := make([]string, len(credentials))
	errs := make([]error, len(credentials))

	p := pool.New().WithMaxGoroutines(r.maxWorkers)
	for i, credential := range credentials {
		p.Go(func() {
			token, err := Retry(ctx, r.retry, func(ctx context.Context) (string, error) {
				return r.remote.Authenticate(ctx, credential, domain.DirectEgress)
			})
			if err != nil {
				errs[i] = fmt.Errorf("account %d (%s): %w", i+1, domain.MaskIdentity(credential.Identity), err)
				r.logger.Error().Err(err).Int("account", i+1).Msg("login failed")
				return
			}
			tokens[i] = token
			r.logger.Debug().Int("account", i+1).Str("token", domain.MaskToken(token)).Msg("logged in")
		})
	}
	p.Wait()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("refresh tokens: %w", err)
	}

	if err := r.tokens.ReplaceTokens(ctx, tokens); err != nil {
		return fmt.Errorf("replace tokens: %w", err)
	}

	r.logger.Info().Bool("success", true).Int("accounts", len(tokens)).Msg("tokens refreshed")
	return nil
}
