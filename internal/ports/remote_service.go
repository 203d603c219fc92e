package ports

import (
	"context"

	"github.com/bnema/openloop-cli/internal/domain"
)

// RemoteService performs single round-trips against the bandwidth-sharing
// API. Implementations never retry.
//
// ListMissions returns domain.ErrAuthExpired on 401. Other failures are
// *domain.ServiceError.
type RemoteService interface {
	Authenticate(ctx context.Context, credential domain.Credential, egress domain.Egress) (string, error)
	Register(ctx context.Context, credential domain.Credential, inviteCode string, egress domain.Egress) (string, error)
	ListMissions(ctx context.Context, token string, egress domain.Egress) ([]domain.Mission, error)
	CompleteMission(ctx context.Context, missionID string, token string, egress domain.Egress) (string, error)
	ShareBandwidth(ctx context.Context, token string, quality int, egress domain.Egress) (domain.ShareResult, error)
	ResolveEgressIP(ctx context.Context, egress domain.Egress) (string, error)
}
