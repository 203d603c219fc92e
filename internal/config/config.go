package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "OPENLOOP"
	configName     = "openloop"
	configType     = "toml"
	userConfigPath = "$HOME/.openloop"
)

const (
	KeyIntervalMinutes = "interval_minutes"
	KeyMaxWorkers      = "max_workers"
	KeyInviteCode      = "invite_code"
	KeyRequestDelay    = "delay_between_requests"
	KeyStartDelay      = "delay_start_bot"
	KeyAccountsFile    = "files.accounts"
	KeyTokensFile      = "files.tokens"
	KeyProxiesFile     = "files.proxies"
	KeyBaseURL         = "api.base_url"
	KeyIPEchoURL       = "api.ip_echo_url"
	KeyRequestTimeout  = "api.request_timeout"
	KeyLogLevel        = "log.level"
)

var (
	DefaultRequestDelay = domain.DelayRange{MinSeconds: 1, MaxSeconds: 5}
	DefaultStartDelay   = domain.DelayRange{MinSeconds: 1, MaxSeconds: 15}
)

// legacyEnv maps keys to the environment names the bot has always read.
// The first variable that is set wins.
var legacyEnv = map[string][]string{
	KeyIntervalMinutes: {"OPENLOOP_INTERVAL_MINUTES", "TIME_SLEEP"},
	KeyMaxWorkers:      {"OPENLOOP_MAX_WORKERS", "MAX_THREADS", "MAX_THEADS"},
	KeyInviteCode:      {"OPENLOOP_INVITE_CODE", "REF_ID"},
	KeyRequestDelay:    {"OPENLOOP_DELAY_BETWEEN_REQUESTS", "DELAY_BETWEEN_REQUESTS"},
	KeyStartDelay:      {"OPENLOOP_DELAY_START_BOT", "DELAY_START_BOT"},
}

type Settings struct {
	IntervalMinutes int               `validate:"gte=1"`
	MaxWorkers      int               `validate:"gte=1,lte=256"`
	InviteCode      string            `validate:"required,alphanum"`
	RequestDelay    domain.DelayRange
	StartDelay      domain.DelayRange
	Files           Files
	API             API
	Log             Log

	// Source is the config file that was read, if any.
	Source string
	// Warnings lists values that were ignored in favor of defaults.
	Warnings []string
}

type Files struct {
	Accounts string `validate:"required"`
	Tokens   string `validate:"required"`
	Proxies  string
}

type API struct {
	BaseURL        string        `validate:"required,url"`
	IPEchoURL      string        `validate:"required,url"`
	RequestTimeout time.Duration `validate:"gte=1s"`
}

type Log struct {
	Level string `validate:"oneof=trace debug info warn error"`
}

func (s Settings) Interval() time.Duration {
	return time.Duration(s.IntervalMinutes) * time.Minute
}

// Load reads defaults, an optional openloop.toml and the environment into
// Settings. configFile, when set, must exist.
func Load(v *viper.Viper, configFile string) (Settings, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	v.SetConfigType(configType)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath(userConfigPath)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("%w: read config: %w", domain.ErrConfiguration, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range legacyEnv {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return Settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	settings := Settings{
		IntervalMinutes: v.GetInt(KeyIntervalMinutes),
		MaxWorkers:      v.GetInt(KeyMaxWorkers),
		InviteCode:      strings.TrimSpace(v.GetString(KeyInviteCode)),
		Files: Files{
			Accounts: v.GetString(KeyAccountsFile),
			Tokens:   v.GetString(KeyTokensFile),
			Proxies:  v.GetString(KeyProxiesFile),
		},
		API: API{
			BaseURL:        v.GetString(KeyBaseURL),
			IPEchoURL:      v.GetString(KeyIPEchoURL),
			RequestTimeout: v.GetDuration(KeyRequestTimeout),
		},
		Log: Log{
			Level: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		},
		Source: v.ConfigFileUsed(),
	}

	var warn string
	settings.RequestDelay, warn = delayRange(v.Get(KeyRequestDelay), DefaultRequestDelay)
	if warn != "" {
		settings.Warnings = append(settings.Warnings, KeyRequestDelay+": "+warn)
	}
	settings.StartDelay, warn = delayRange(v.Get(KeyStartDelay), DefaultStartDelay)
	if warn != "" {
		settings.Warnings = append(settings.Warnings, KeyStartDelay+": "+warn)
	}

	if err := Validate(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyIntervalMinutes, 8)
	v.SetDefault(KeyMaxWorkers, 10)
	v.SetDefault(KeyInviteCode, "olb623a000")
	v.SetDefault(KeyRequestDelay, "[1,5]")
	v.SetDefault(KeyStartDelay, "[1,15]")
	v.SetDefault(KeyAccountsFile, "accounts.txt")
	v.SetDefault(KeyTokensFile, "token.txt")
	v.SetDefault(KeyProxiesFile, "proxy.txt")
	v.SetDefault(KeyBaseURL, "https://api.openloop.so")
	v.SetDefault(KeyIPEchoURL, "https://api.ipify.org?format=json")
	v.SetDefault(KeyRequestTimeout, 30*time.Second)
	v.SetDefault(KeyLogLevel, "info")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Validate(s Settings) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}
	if err := s.RequestDelay.Validate(); err != nil {
		return fmt.Errorf("%s: %w", KeyRequestDelay, err)
	}
	if err := s.StartDelay.Validate(); err != nil {
		return fmt.Errorf("%s: %w", KeyStartDelay, err)
	}
	return nil
}

// delayRange accepts a JSON array string such as "[1,5]" or a TOML array.
// Anything else falls back to def.
func delayRange(raw any, def domain.DelayRange) (domain.DelayRange, string) {
	var bounds []int

	switch value := raw.(type) {
	case nil:
		return def, ""
	case string:
		if err := json.Unmarshal([]byte(value), &bounds); err != nil {
			return def, fmt.Sprintf("invalid JSON array %q, using defaults", value)
		}
	case []any:
		for _, item := range value {
			n, ok := toInt(item)
			if !ok {
				return def, fmt.Sprintf("non-integer bound %v, using defaults", item)
			}
			bounds = append(bounds, n)
		}
	case []int:
		bounds = value
	default:
		return def, fmt.Sprintf("unsupported value %v, using defaults", value)
	}

	if len(bounds) != 2 {
		return def, fmt.Sprintf("expected [min,max], got %v, using defaults", bounds)
	}

	r := domain.DelayRange{MinSeconds: bounds[0], MaxSeconds: bounds[1]}
	if err := r.Validate(); err != nil {
		return def, fmt.Sprintf("%v, using defaults", err)
	}
	return r, ""
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

type showSchema struct {
	IntervalMinutes      int       `toml:"interval_minutes"`
	MaxWorkers           int       `toml:"max_workers"`
	InviteCode           string    `toml:"invite_code"`
	DelayBetweenRequests [2]int    `toml:"delay_between_requests"`
	DelayStartBot        [2]int    `toml:"delay_start_bot"`
	Files                showFiles `toml:"files"`
	API                  showAPI   `toml:"api"`
	Log                  showLog   `toml:"log"`
}

type showFiles struct {
	Accounts string `toml:"accounts"`
	Tokens   string `toml:"tokens"`
	Proxies  string `toml:"proxies"`
}

type showAPI struct {
	BaseURL        string `toml:"base_url"`
	IPEchoURL      string `toml:"ip_echo_url"`
	RequestTimeout string `toml:"request_timeout"`
}

type showLog struct {
	Level string `toml:"level"`
}

// Show encodes the effective settings in the openloop.toml layout.
func Show(s Settings) ([]byte, error) {
	encoded, err := toml.Marshal(showSchema{
		IntervalMinutes:      s.IntervalMinutes,
		MaxWorkers:           s.MaxWorkers,
		InviteCode:           s.InviteCode,
		DelayBetweenRequests: [2]int{s.RequestDelay.MinSeconds, s.RequestDelay.MaxSeconds},
		DelayStartBot:        [2]int{s.StartDelay.MinSeconds, s.StartDelay.MaxSeconds},
		Files: showFiles{
			Accounts: s.Files.Accounts,
			Tokens:   s.Files.Tokens,
			Proxies:  s.Files.Proxies,
		},
		API: showAPI{
			BaseURL:        s.API.BaseURL,
			IPEchoURL:      s.API.IPEchoURL,
			RequestTimeout: s.API.RequestTimeout.String(),
		},
		Log: showLog{Level: s.Log.Level},
	})
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return encoded, nil
}
