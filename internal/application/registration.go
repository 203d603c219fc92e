package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/bnema/openloop-cli/internal/ports"
	"github.com/rs/zerolog"
)

const DefaultInviteCode = "olb623a000"

var ErrNoAccountAuthenticated = errors.New("no account could be authenticated")

type RegistrarOptions struct {
	InviteCode string
	// Pause is the jittered wait between two accounts.
	Pause domain.DelayRange
	Intn  func(n int) int
	// Sleep defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

type RegistrationResult struct {
	Registered int
	Existing   int
	Failed     []int
	Tokens     int
}

// Registrar signs every credential up with the invite code, logs it in and
// stores the resulting tokens in credential order.
type Registrar struct {
	credentials ports.CredentialSource
	tokens      ports.TokenStore
	remote      ports.RemoteService
	retry       *RetryExecutor
	inviteCode  string
	pause       domain.DelayRange
	intn        func(n int) int
	sleep       func(ctx context.Context, d time.Duration) error
	logger      zerolog.Logger
}

func NewRegistrar(
	credentials ports.CredentialSource,
	tokens ports.TokenStore,
	remote ports.RemoteService,
	retry *RetryExecutor,
	opts RegistrarOptions,
	logger zerolog.Logger,
) *Registrar {
	if opts.InviteCode == "" {
		opts.InviteCode = DefaultInviteCode
	}
	if opts.Intn == nil {
		opts.Intn = rand.IntN
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	if retry == nil {
		retry = DefaultRetryExecutor(nil)
	}

	return &Registrar{
		credentials: credentials,
		tokens:      tokens,
		remote:      remote,
		retry:       retry,
		inviteCode:  opts.InviteCode,
		pause:       opts.Pause,
		intn:        opts.Intn,
		sleep:       opts.Sleep,
		logger:      logger,
	}
}

func (r *Registrar) RegisterAll(ctx context.Context) (RegistrationResult, error) {
	var result RegistrationResult

	credentials, err := r.credentials.LoadCredentials(ctx)
	if err != nil {
		return result, fmt.Errorf("load credentials: %w", err)
	}

	tokens := make([]string, 0, len(credentials))
	for i, credential := range credentials {
		if i > 0 {
			if err := r.sleep(ctx, r.pause.Sample(r.intn)); err != nil {
				return result, err
			}
		}

		logger := r.logger.With().
			Int("account", i+1).
			Str("identity", domain.MaskIdentity(credential.Identity)).
			Logger()

		message, err := Retry(ctx, r.retry, func(ctx context.Context) (string, error) {
			return r.remote.Register(ctx, credential, r.inviteCode, domain.DirectEgress)
		})
		switch {
		case errors.Is(err, domain.ErrAlreadyRegistered):
			result.Existing++
			logger.Warn().Msg("account already registered, logging in")
		case err != nil:
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.Failed = append(result.Failed, i+1)
			logger.Error().Err(err).Msg("registration failed")
			continue
		default:
			result.Registered++
			logger.Info().Bool("success", true).Msg(message)
		}

		token, err := Retry(ctx, r.retry, func(ctx context.Context) (string, error) {
			return r.remote.Authenticate(ctx, credential, domain.DirectEgress)
		})
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.Failed = append(result.Failed, i+1)
			logger.Error().Err(err).Msg("login failed")
			continue
		}

		tokens = append(tokens, token)
		logger.Info().Bool("success", true).Str("token", domain.MaskToken(token)).Msg("logged in")
	}

	if len(tokens) == 0 {
		return result, ErrNoAccountAuthenticated
	}
	if len(result.Failed) > 0 {
		r.logger.Warn().
			Ints("accounts", result.Failed).
			Msg("some accounts have no token, token positions no longer match the accounts file")
	}

	if err := r.tokens.ReplaceTokens(ctx, tokens); err != nil {
		return result, fmt.Errorf("replace tokens: %w", err)
	}
	result.Tokens = len(tokens)

	return result, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
