package application

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/bnema/openloop-cli/internal/ports"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultMissionSpacing = time.Second
	unknownEgressIP       = "unknown"
)

// AccountRunner executes one account's work for a tick. onAuthExpired is
// called at most once, as soon as the account's token is rejected.
type AccountRunner interface {
	Run(ctx context.Context, run domain.AccountRun, onAuthExpired func()) domain.AccountReport
}

type AccountTaskOptions struct {
	DirectQuality  domain.QualityRange
	ProxyQuality   domain.QualityRange
	MissionSpacing time.Duration
	// Intn must return a value in [0,n). Defaults to math/rand/v2.
	Intn func(n int) int
}

type AccountTask struct {
	remote         ports.RemoteService
	retry          *RetryExecutor
	directQuality  domain.QualityRange
	proxyQuality   domain.QualityRange
	missionSpacing time.Duration
	intn           func(n int) int
	logger         zerolog.Logger
}

var _ AccountRunner = (*AccountTask)(nil)

func NewAccountTask(remote ports.RemoteService, retry *RetryExecutor, opts AccountTaskOptions, logger zerolog.Logger) *AccountTask {
	if opts.DirectQuality == (domain.QualityRange{}) {
		opts.DirectQuality = domain.DirectQuality
	}
	if opts.ProxyQuality == (domain.QualityRange{}) {
		opts.ProxyQuality = domain.ProxyQuality
	}
	if opts.MissionSpacing < 0 {
		opts.MissionSpacing = 0
	}
	if opts.Intn == nil {
		opts.Intn = rand.IntN
	}
	if retry == nil {
		retry = DefaultRetryExecutor(nil)
	}

	return &AccountTask{
		remote:         remote,
		retry:          retry,
		directQuality:  opts.DirectQuality,
		proxyQuality:   opts.ProxyQuality,
		missionSpacing: opts.MissionSpacing,
		intn:           opts.Intn,
		logger:         logger,
	}
}

// Run resolves the egress, works through available missions and shares
// bandwidth. Failures are logged and recorded in the report; only an
// expired token changes the flow, by skipping missions.
func (t *AccountTask) Run(ctx context.Context, run domain.AccountRun, onAuthExpired func()) domain.AccountReport {
	logger := t.logger.With().Int("account", run.Label()).Logger()
	report := domain.AccountReport{Index: run.Index}

	if !run.Egress.Direct() {
		run.EgressIP = t.resolveEgress(ctx, run, &report, logger)
		logger = logger.With().Str("ip", run.EgressIP).Logger()
	}
	report.EgressIP = run.EgressIP

	missions, err := Retry(ctx, t.retry, func(ctx context.Context) ([]domain.Mission, error) {
		return t.remote.ListMissions(ctx, run.Token, run.Egress)
	})
	switch {
	case errors.Is(err, domain.ErrAuthExpired):
		report.AuthExpired = true
		report.Errors = append(report.Errors, err.Error())
		logger.Warn().Msg("session token expired, requesting token refresh")
		if onAuthExpired != nil {
			onAuthExpired()
		}
	case err != nil:
		report.Errors = append(report.Errors, err.Error())
		logger.Error().Err(err).Msg("failed to list missions")
	default:
		report.MissionsListed = true
		t.completeMissions(ctx, run, missions, &report, logger)
	}

	t.shareBandwidth(ctx, run, &report, logger)

	return report
}

func (t *AccountTask) resolveEgress(ctx context.Context, run domain.AccountRun, report *domain.AccountReport, logger zerolog.Logger) string {
	ip, err := Retry(ctx, t.retry, func(ctx context.Context) (string, error) {
		return t.remote.ResolveEgressIP(ctx, run.Egress)
	})
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		logger.Error().Err(err).Str("proxy", run.Egress.Redacted()).Msg("failed to resolve egress ip")
		return unknownEgressIP
	}

	logger.Info().Str("proxy", run.Egress.Redacted()).Str("ip", ip).Msg("routing through proxy")
	return ip
}

func (t *AccountTask) completeMissions(ctx context.Context, run domain.AccountRun, missions []domain.Mission, report *domain.AccountReport, logger zerolog.Logger) {
	available := domain.AvailableMissions(missions)
	report.MissionsAvailable = len(available)
	logger.Info().Int("available", len(available)).Msg("missions listed")

	limiter := rate.NewLimiter(rate.Every(t.missionSpacing), 1)
	for _, mission := range available {
		if err := limiter.Wait(ctx); err != nil {
			report.Errors = append(report.Errors, err.Error())
			return
		}

		message, err := Retry(ctx, t.retry, func(ctx context.Context) (string, error) {
			return t.remote.CompleteMission(ctx, mission.ID, run.Token, run.Egress)
		})
		if err != nil {
			report.MissionsFailed++
			report.Errors = append(report.Errors, err.Error())
			logger.Error().Err(err).Str("mission", mission.ID).Msg("failed to complete mission")
			continue
		}

		report.MissionsCompleted++
		logger.Info().Bool("success", true).Str("mission", mission.ID).Msg(message)
	}
}

func (t *AccountTask) shareBandwidth(ctx context.Context, run domain.AccountRun, report *domain.AccountReport, logger zerolog.Logger) {
	report.ShareAttempted = true

	var quality int
	result, err := Retry(ctx, t.retry, func(ctx context.Context) (domain.ShareResult, error) {
		// A fresh score per call, never reused across attempts.
		quality = t.qualityFor(run.Egress).Sample(t.intn)
		report.Quality = quality
		return t.remote.ShareBandwidth(ctx, run.Token, quality, run.Egress)
	})
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		logger.Warn().Err(err).Msg("bandwidth share abandoned for this tick")
		return
	}

	report.Shared = true
	report.ShareMessage = result.Message
	report.Balance = result.TotalBalance
	logger.Info().
		Bool("success", true).
		Int("quality", quality).
		Float64("balance", result.TotalBalance).
		Msg(result.Message)
}

func (t *AccountTask) qualityFor(egress domain.Egress) domain.QualityRange {
	if egress.Direct() {
		return t.directQuality
	}
	return t.proxyQuality
}
