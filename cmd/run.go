package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/openloop-cli/internal/adapters/logging"
	summaryrender "github.com/bnema/openloop-cli/internal/adapters/render/summary"
	"github.com/bnema/openloop-cli/internal/application"
	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/bnema/openloop-cli/internal/version"
	"github.com/spf13/cobra"
)

type runFlags struct {
	interval    time.Duration
	jitterStart bool
	proxies     string
	noProxy     bool
	noSummary   bool
}

func newRunCmd(app *app) *cobra.Command {
	flags := runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Share bandwidth and complete missions for every account on a fixed interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runScheduler(ctx, cmd, app, flags)
		},
	}

	cmd.Flags().DurationVar(&flags.interval, "interval", 0, "tick interval (defaults to interval_minutes from the config)")
	cmd.Flags().BoolVar(&flags.jitterStart, "jitter-start", false, "wait a random delay_start_bot delay before the first tick")
	cmd.Flags().StringVar(&flags.proxies, "proxies", "", "proxy list file, one proxy per account line")
	cmd.Flags().BoolVar(&flags.noProxy, "no-proxy", false, "connect directly even if a proxy file exists")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "do not print a summary after each tick")

	return cmd
}

func runScheduler(ctx context.Context, cmd *cobra.Command, app *app, flags runFlags) error {
	interval := app.settings.Interval()
	if flags.interval > 0 {
		interval = flags.interval
	}

	proxies := app.settings.Files.Proxies
	if flags.proxies != "" {
		proxies = flags.proxies
	}
	if flags.noProxy {
		proxies = ""
	}

	store, err := app.store(proxies)
	if err != nil {
		return err
	}

	var startDelay time.Duration
	if flags.jitterStart {
		startDelay = app.settings.StartDelay.Sample(rand.IntN)
	}

	out := cmd.OutOrStdout()
	if !flags.noSummary {
		fmt.Fprintln(out, summaryrender.Banner(version.Version))
	}

	timerLogger := logging.Component(app.logger, "timer")
	timer := app.newTimer(timerLogger)
	defer timer.Stop()

	task := application.NewAccountTask(
		app.remote,
		app.retryExecutor("account"),
		application.AccountTaskOptions{MissionSpacing: application.DefaultMissionSpacing},
		logging.Component(app.logger, "account"),
	)

	scheduler := application.NewScheduler(
		store,
		store,
		task,
		app.tokenRefresher(store),
		timer,
		app.clock,
		application.SchedulerOptions{
			Interval:   interval,
			Stagger:    application.DefaultStartStagger,
			StartDelay: startDelay,
			OnTick: func(report domain.TickReport) {
				if flags.noSummary {
					return
				}
				nextIn := interval
				if next, armed := timer.Next(); armed {
					nextIn = next.Sub(app.clock.Now())
				}
				fmt.Fprintln(out, summaryrender.RenderTick(report, summaryrender.TickOptions{NextIn: nextIn}))
			},
		},
		logging.Component(app.logger, "scheduler"),
	)

	if err := scheduler.Run(ctx); err != nil {
		return fmt.Errorf("run scheduler: %w", err)
	}
	return nil
}
