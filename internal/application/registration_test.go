package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/bnema/openloop-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedSleeps struct {
	waits []time.Duration
}

func (r *recordedSleeps) sleep(_ context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return nil
}

func TestRegistrarRegistersLogsInAndStoresTokens(t *testing.T) {
	t.Parallel()

	credentials := mocks.NewMockCredentialSource(t)
	tokens := mocks.NewMockTokenStore(t)
	remote := mocks.NewMockRemoteService(t)

	credentials.EXPECT().LoadCredentials(mockAnyContext()).Return(testCredentials, nil).Once()

	remote.EXPECT().Register(mockAnyContext(), testCredentials[0], "invite-1", domain.DirectEgress).Return("registered", nil).Once()
	remote.EXPECT().Register(mockAnyContext(), testCredentials[1], "invite-1", domain.DirectEgress).Return("", domain.ErrAlreadyRegistered).Once()
	remote.EXPECT().Register(mockAnyContext(), testCredentials[2], "invite-1", domain.DirectEgress).Return("registered", nil).Once()
	for _, credential := range testCredentials {
		remote.EXPECT().Authenticate(mockAnyContext(), credential, domain.DirectEgress).Return("token-"+credential.Secret, nil).Once()
	}
	tokens.EXPECT().ReplaceTokens(mockAnyContext(), []string{"token-pw1", "token-pw2", "token-pw3"}).Return(nil).Once()

	sleeps := &recordedSleeps{}
	registrar := NewRegistrar(credentials, tokens, remote, NewRetryExecutor(3, 0, nil), RegistrarOptions{
		InviteCode: "invite-1",
		Pause:      domain.DelayRange{MinSeconds: 1, MaxSeconds: 5},
		Intn:       func(n int) int { return n - 1 },
		Sleep:      sleeps.sleep,
	}, zerolog.Nop())

	result, err := registrar.RegisterAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, RegistrationResult{Registered: 2, Existing: 1, Tokens: 3}, result)
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, sleeps.waits)
}

func TestRegistrarSkipsAccountsThatCannotLogIn(t *testing.T) {
	t.Parallel()

	credentials := mocks.NewMockCredentialSource(t)
	tokens := mocks.NewMockTokenStore(t)
	remote := mocks.NewMockRemoteService(t)

	credentials.EXPECT().LoadCredentials(mockAnyContext()).Return(testCredentials[:2], nil).Once()
	remote.EXPECT().Register(mockAnyContext(), mockAnyContext(), DefaultInviteCode, domain.DirectEgress).Return("ok", nil).Times(2)
	remote.EXPECT().Authenticate(mockAnyContext(), testCredentials[0], domain.DirectEgress).Return("", domain.ErrAuthFailed).Times(2)
	remote.EXPECT().Authenticate(mockAnyContext(), testCredentials[1], domain.DirectEgress).Return("token-2", nil).Once()
	tokens.EXPECT().ReplaceTokens(mockAnyContext(), []string{"token-2"}).Return(nil).Once()

	sleeps := &recordedSleeps{}
	registrar := NewRegistrar(credentials, tokens, remote, NewRetryExecutor(2, 0, nil), RegistrarOptions{Sleep: sleeps.sleep}, zerolog.Nop())

	result, err := registrar.RegisterAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1}, result.Failed)
	assert.Equal(t, 1, result.Tokens)
}

func TestRegistrarFailsWhenNoAccountAuthenticates(t *testing.T) {
	t.Parallel()

	credentials := mocks.NewMockCredentialSource(t)
	tokens := mocks.NewMockTokenStore(t)
	remote := mocks.NewMockRemoteService(t)

	credentials.EXPECT().LoadCredentials(mockAnyContext()).Return(testCredentials[:1], nil).Once()
	remote.EXPECT().Register(mockAnyContext(), testCredentials[0], DefaultInviteCode, domain.DirectEgress).
		Return("", &domain.ServiceError{Op: "register", Status: 500}).Times(2)

	registrar := NewRegistrar(credentials, tokens, remote, NewRetryExecutor(2, 0, nil), RegistrarOptions{}, zerolog.Nop())

	_, err := registrar.RegisterAll(context.Background())

	require.ErrorIs(t, err, ErrNoAccountAuthenticated)
}

func TestRegistrarRejectsEmptyAccountsFile(t *testing.T) {
	t.Parallel()

	credentials := mocks.NewMockCredentialSource(t)
	credentials.EXPECT().LoadCredentials(mockAnyContext()).Return(nil, domain.ErrNoCredentials).Once()

	registrar := NewRegistrar(credentials, mocks.NewMockTokenStore(t), mocks.NewMockRemoteService(t), nil, RegistrarOptions{}, zerolog.Nop())

	_, err := registrar.RegisterAll(context.Background())

	require.ErrorIs(t, err, domain.ErrNoCredentials)
}

func TestSleepContextStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepContext(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
}
