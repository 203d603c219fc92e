package application

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/bnema/openloop-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
	"golang.org/x/time/rate"
)

const (
	DefaultTickInterval = 8 * time.Minute
	DefaultStartStagger = 100 * time.Millisecond
)

type SchedulerState int32

const (
	StateRunning SchedulerState = iota
	StateRefreshing
)

func (s SchedulerState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

type SchedulerOptions struct {
	Interval time.Duration
	Stagger  time.Duration
	// StartDelay is waited once before the first tick.
	StartDelay time.Duration
	// OnTick receives every finished tick. It runs on the ticking goroutine.
	OnTick func(domain.TickReport)
	// Sleep defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Scheduler runs every account once per tick and pauses the cadence while
// expired tokens are regenerated.
type Scheduler struct {
	tokens    ports.TokenStore
	egress    ports.EgressSource
	runner    AccountRunner
	refresher ports.TokenRefresher
	timer     ports.IntervalTimer
	clock     ports.Clock
	logger    zerolog.Logger

	interval   time.Duration
	stagger    time.Duration
	startDelay time.Duration
	onTick     func(domain.TickReport)
	sleep      func(ctx context.Context, d time.Duration) error

	current  atomic.Pointer[[]string]
	bindings []domain.Egress
	state    atomic.Int32
	ticking  atomic.Bool

	// mu makes timer arming and state transitions a single step.
	mu         sync.Mutex
	runCtx     context.Context
	background sync.WaitGroup
}

func NewScheduler(
	tokens ports.TokenStore,
	egress ports.EgressSource,
	runner AccountRunner,
	refresher ports.TokenRefresher,
	timer ports.IntervalTimer,
	clock ports.Clock,
	opts SchedulerOptions,
	logger zerolog.Logger,
) *Scheduler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultTickInterval
	}
	if opts.Stagger < 0 {
		opts.Stagger = 0
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}

	return &Scheduler{
		tokens:     tokens,
		egress:     egress,
		runner:     runner,
		refresher:  refresher,
		timer:      timer,
		clock:      clock,
		logger:     logger,
		interval:   opts.Interval,
		stagger:    opts.Stagger,
		startDelay: opts.StartDelay,
		onTick:     opts.OnTick,
		sleep:      opts.Sleep,
		runCtx:     context.Background(),
	}
}

func (s *Scheduler) State() SchedulerState {
	return SchedulerState(s.state.Load())
}

// Run loads tokens and bindings, ticks once, arms the timer and blocks
// until ctx is done. Load and binding errors are returned before any
// remote call is made.
func (s *Scheduler) Run(ctx context.Context) error {
	tokens, err := s.tokens.LoadTokens(ctx)
	if err != nil {
		return fmt.Errorf("load tokens: %w", err)
	}
	bindings, err := s.egress.LoadEgress(ctx)
	if err != nil {
		return fmt.Errorf("load egress bindings: %w", err)
	}
	if err := checkBindings(tokens, bindings); err != nil {
		return err
	}

	s.mu.Lock()
	s.runCtx = ctx
	s.bindings = bindings
	s.mu.Unlock()
	s.current.Store(&tokens)
	s.state.Store(int32(StateRunning))

	mode := "direct"
	if len(bindings) > 0 {
		mode = "proxy"
	}
	s.logger.Info().
		Int("accounts", len(tokens)).
		Str("mode", mode).
		Dur("interval", s.interval).
		Msg("scheduler started")

	defer func() {
		s.background.Wait()
		s.timer.Disarm()
	}()

	if s.startDelay > 0 {
		s.logger.Info().Dur("delay", s.startDelay).Msg("delaying first tick")
		if err := s.sleep(ctx, s.startDelay); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("delay first tick: %w", err)
		}
	}

	s.tick(ctx)

	s.mu.Lock()
	if ctx.Err() == nil && s.State() == StateRunning && !s.timer.Armed() {
		if err := s.timer.Arm(s.interval, s.onTimer); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("arm tick timer: %w", err)
		}
	}
	s.mu.Unlock()

	<-ctx.Done()
	s.logger.Info().Msg("scheduler stopping")
	return nil
}

func (s *Scheduler) onTimer() {
	if s.State() != StateRunning {
		s.logger.Debug().Msg("timer fired while refreshing, skipping tick")
		return
	}

	s.mu.Lock()
	ctx := s.runCtx
	s.mu.Unlock()
	if ctx.Err() != nil {
		return
	}

	s.tick(ctx)
}

func (s *Scheduler) tick(ctx context.Context) {
	if !s.ticking.CompareAndSwap(false, true) {
		s.logger.Warn().Msg("previous tick still running, skipping tick")
		return
	}
	defer s.ticking.Store(false)

	report := s.RunTick(ctx)
	if s.onTick != nil {
		s.onTick(report)
	}
}

// RunTick launches one account task per loaded token and waits for all of
// them. A token/binding mismatch aborts the tick with no remote calls.
func (s *Scheduler) RunTick(ctx context.Context) domain.TickReport {
	report := domain.TickReport{
		ID:        uuid.NewString(),
		StartedAt: s.clock.Now(),
	}
	logger := s.logger.With().Str("tick", report.ID).Logger()

	var tokens []string
	if loaded := s.current.Load(); loaded != nil {
		tokens = *loaded
	}

	s.mu.Lock()
	bindings := s.bindings
	s.mu.Unlock()

	if err := checkBindings(tokens, bindings); err != nil {
		logger.Error().Err(err).Msg("tick aborted")
		report.FinishedAt = s.clock.Now()
		return report
	}

	reports := make([]domain.AccountReport, len(tokens))
	limiter := rate.NewLimiter(rate.Every(s.stagger), 1)

	// Accounts launched after a refresh resumed still hold this tick's
	// tokens, so the tick requests at most one refresh.
	var refreshOnce sync.Once
	onAuthExpired := func() { refreshOnce.Do(s.requestRefresh) }

	launched := 0
	var wg conc.WaitGroup
	for i, token := range tokens {
		reports[i].Index = i
		if err := limiter.Wait(ctx); err != nil {
			logger.Warn().Err(err).Int("launched", launched).Msg("tick interrupted")
			break
		}
		launched++

		run := domain.AccountRun{Index: i, Token: token}
		if len(bindings) > 0 {
			run.Egress = bindings[i]
		}

		wg.Go(func() {
			reports[i] = s.runner.Run(ctx, run, onAuthExpired)
		})
	}

	if recovered := wg.WaitAndRecover(); recovered != nil {
		logger.Error().Str("panic", recovered.String()).Msg("account task panicked")
	}

	report.Accounts = reports[:launched]
	report.FinishedAt = s.clock.Now()
	logger.Info().
		Int("accounts", len(report.Accounts)).
		Int("shared", report.SharedCount()).
		Dur("elapsed", report.Duration()).
		Dur("next_in", s.interval).
		Msg("tick finished")

	return report
}

// requestRefresh moves Running to Refreshing and hands the refresh to a
// goroutine owned by the scheduler. Calls made while a refresh is in flight
// are dropped.
func (s *Scheduler) requestRefresh() {
	s.mu.Lock()
	if !s.state.CompareAndSwap(int32(StateRunning), int32(StateRefreshing)) {
		s.mu.Unlock()
		return
	}
	s.timer.Disarm()
	ctx := s.runCtx
	s.background.Add(1)
	s.mu.Unlock()

	s.logger.Warn().Msg("token expired, pausing ticks to refresh tokens")

	go func() {
		defer s.background.Done()
		s.refresh(ctx)
	}()
}

func (s *Scheduler) refresh(ctx context.Context) {
	if err := s.refresher.RefreshAllTokens(ctx); err != nil {
		s.logger.Error().Err(err).Msg("token refresh failed, ticks stay paused")
		return
	}

	tokens, err := s.tokens.LoadTokens(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("reload tokens after refresh failed, ticks stay paused")
		return
	}
	s.current.Store(&tokens)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	if err := s.timer.Arm(s.interval, s.onTimer); err != nil {
		s.logger.Error().Err(err).Msg("re-arm tick timer failed, ticks stay paused")
		return
	}
	s.state.Store(int32(StateRunning))

	s.logger.Info().
		Bool("success", true).
		Int("accounts", len(tokens)).
		Dur("interval", s.interval).
		Msg("tokens refreshed, resuming ticks")
}

func checkBindings(tokens []string, bindings []domain.Egress) error {
	if len(bindings) > 0 && len(tokens) > len(bindings) {
		return fmt.Errorf("%w: %d tokens but only %d proxies", domain.ErrConfiguration, len(tokens), len(bindings))
	}
	return nil
}
