package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/bnema/openloop-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCredentials = []domain.Credential{
	{Identity: "one@example.com", Secret: "pw1"},
	{Identity: "two@example.com", Secret: "pw2"},
	{Identity: "three@example.com", Secret: "pw3"},
}

func TestTokenRefresherKeepsCredentialOrder(t *testing.T) {
	t.Parallel()

	credentials := mocks.NewMockCredentialSource(t)
	tokens := mocks.NewMockTokenStore(t)
	remote := mocks.NewMockRemoteService(t)

	credentials.EXPECT().LoadCredentials(mockAnyContext()).Return(testCredentials, nil).Once()
	for i, credential := range testCredentials {
		delay := time.Duration(len(testCredentials)-i) * 5 * time.Millisecond
		remote.EXPECT().Authenticate(mockAnyContext(), credential, domain.DirectEgress).
			RunAndReturn(func(context.Context, domain.Credential, domain.Egress) (string, error) {
				time.Sleep(delay)
				return "token-" + credential.Secret, nil
			}).Once()
	}
	tokens.EXPECT().ReplaceTokens(mockAnyContext(), []string{"token-pw1", "token-pw2", "token-pw3"}).Return(nil).Once()

	refresher := NewTokenRefresher(credentials, tokens, remote, NewRetryExecutor(3, 0, nil), 3, zerolog.Nop())

	require.NoError(t, refresher.RefreshAllTokens(context.Background()))
}

func TestTokenRefresherBoundsConcurrentLogins(t *testing.T) {
	t.Parallel()

	credentials := mocks.NewMockCredentialSource(t)
	tokens := mocks.NewMockTokenStore(t)
	remote := mocks.NewMockRemoteService(t)

	credentials.EXPECT().LoadCredentials(mockAnyContext()).Return(testCredentials, nil).Once()

	var inFlight, peak atomic.Int32
	remote.EXPECT().Authenticate(mockAnyContext(), mockAnyContext(), domain.DirectEgress).
		RunAndReturn(func(context.Context, domain.Credential, domain.Egress) (string, error) {
			current := inFlight.Add(1)
			for {
				seen := peak.Load()
				if current <= seen || peak.CompareAndSwap(seen, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return "token", nil
		}).Times(3)
	tokens.EXPECT().ReplaceTokens(mockAnyContext(), []string{"token", "token", "token"}).Return(nil).Once()

	refresher := NewTokenRefresher(credentials, tokens, remote, NewRetryExecutor(1, 0, nil), 1, zerolog.Nop())

	require.NoError(t, refresher.RefreshAllTokens(context.Background()))
	assert.EqualValues(t, 1, peak.Load())
}

func TestTokenRefresherLeavesTokensUntouchedOnFailure(t *testing.T) {
	t.Parallel()

	credentials := mocks.NewMockCredentialSource(t)
	tokens := mocks.NewMockTokenStore(t)
	remote := mocks.NewMockRemoteService(t)

	credentials.EXPECT().LoadCredentials(mockAnyContext()).Return(testCredentials, nil).Once()
	remote.EXPECT().Authenticate(mockAnyContext(), testCredentials[0], domain.DirectEgress).Return("a", nil).Once()
	remote.EXPECT().Authenticate(mockAnyContext(), testCredentials[1], domain.DirectEgress).
		Return("", domain.ErrAuthFailed).Times(2)
	remote.EXPECT().Authenticate(mockAnyContext(), testCredentials[2], domain.DirectEgress).Return("c", nil).Once()

	refresher := NewTokenRefresher(credentials, tokens, remote, NewRetryExecutor(2, 0, nil), 3, zerolog.Nop())

	err := refresher.RefreshAllTokens(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Contains(t, err.Error(), "account 2 (t*o@example.com)")
	tokens.AssertNotCalled(t, "ReplaceTokens", mockAnyContext(), mockAnyContext())
}

func TestTokenRefresherPropagatesCredentialErrors(t *testing.T) {
	t.Parallel()

	credentials := mocks.NewMockCredentialSource(t)
	credentials.EXPECT().LoadCredentials(mockAnyContext()).Return(nil, domain.ErrNoCredentials).Once()

	refresher := NewTokenRefresher(credentials, mocks.NewMockTokenStore(t), mocks.NewMockRemoteService(t), nil, 0, zerolog.Nop())

	err := refresher.RefreshAllTokens(context.Background())
	require.ErrorIs(t, err, domain.ErrNoCredentials)
	assert.False(t, errors.Is(err, domain.ErrAuthFailed))
}
