package cmd

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/openloop-cli/internal/adapters/logging"
	"github.com/bnema/openloop-cli/internal/adapters/openloop"
	filestore "github.com/bnema/openloop-cli/internal/adapters/store/file"
	crontimer "github.com/bnema/openloop-cli/internal/adapters/timer/cron"
	"github.com/bnema/openloop-cli/internal/application"
	"github.com/bnema/openloop-cli/internal/config"
	"github.com/bnema/openloop-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	settings config.Settings
	logger   zerolog.Logger
	remote   *openloop.Client
	clock    ports.Clock
	newTimer func(zerolog.Logger) *crontimer.Timer
}

type wireOptions struct {
	configFile string
	logLevel   string
	quiet      bool
	logOutput  io.Writer
	transport  *http.Transport
}

func wireApp(opts wireOptions) (*app, error) {
	settings, err := config.Load(viper.New(), opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	level := settings.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	if opts.quiet {
		level = zerolog.LevelWarnValue
	}

	logger, err := logging.New(opts.logOutput, logging.Options{Level: level})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}
	for _, warning := range settings.Warnings {
		logger.Warn().Msg(warning)
	}

	remote, err := openloop.NewClient(openloop.Options{
		BaseURL:        settings.API.BaseURL,
		IPEchoURL:      settings.API.IPEchoURL,
		RequestTimeout: settings.API.RequestTimeout,
		Transport:      opts.transport,
	})
	if err != nil {
		return nil, fmt.Errorf("wire remote client: %w", err)
	}

	return &app{
		settings: settings,
		logger:   logger,
		remote:   remote,
		clock:    ports.SystemClock{},
		newTimer: crontimer.New,
	}, nil
}

func (a *app) store(proxies string) (*filestore.Store, error) {
	store, err := filestore.NewStore(filestore.Paths{
		Credentials: a.settings.Files.Accounts,
		Tokens:      a.settings.Files.Tokens,
		Proxies:     proxies,
	})
	if err != nil {
		return nil, fmt.Errorf("wire file store: %w", err)
	}
	return store, nil
}

func (a *app) retryExecutor(component string) *application.RetryExecutor {
	logger := logging.Component(a.logger, component)
	var executor *application.RetryExecutor
	executor = application.DefaultRetryExecutor(func(attempt int, err error, next time.Duration) {
		logger.Debug().
			Err(err).
			Str("attempt", fmt.Sprintf("%d/%d", attempt, executor.MaxAttempts())).
			Dur("retry_in", next).
			Msg("remote call failed, retrying")
	})
	return executor
}

func (a *app) tokenRefresher(store *filestore.Store) *application.TokenRefresher {
	return application.NewTokenRefresher(
		store,
		store,
		a.remote,
		a.retryExecutor("refresh"),
		a.settings.MaxWorkers,
		logging.Component(a.logger, "refresh"),
	)
}
