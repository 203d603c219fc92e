package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// SuccessField marks an info event as a success. The console writer turns
// it into a SUCCESS level label.
const SuccessField = "success"

const levelSuccess = "success"

type Options struct {
	Level string
	// Color forces colored output; nil detects a terminal on w.
	Color *bool
	// TimeFormat defaults to a clock time.
	TimeFormat string
}

func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	color := IsTerminal(w)
	if opts.Color != nil {
		color = *opts.Color
	}

	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = "15:04:05"
	}

	console := zerolog.ConsoleWriter{
		Out:           w,
		NoColor:       !color,
		TimeFormat:    timeFormat,
		FormatPrepare: promoteSuccess,
		FormatLevel:   levelFormatter(color),
	}

	return zerolog.New(console).Level(level).With().Timestamp().Logger(), nil
}

// Component derives a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

func promoteSuccess(evt map[string]interface{}) error {
	success, ok := evt[SuccessField].(bool)
	if !ok {
		return nil
	}
	delete(evt, SuccessField)
	if success {
		evt[zerolog.LevelFieldName] = levelSuccess
	}
	return nil
}

var levelStyles = map[string]lipgloss.Style{
	zerolog.LevelTraceValue: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	zerolog.LevelDebugValue: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	zerolog.LevelInfoValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	zerolog.LevelWarnValue:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	zerolog.LevelErrorValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	zerolog.LevelFatalValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	levelSuccess:            lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
}

func levelFormatter(color bool) zerolog.Formatter {
	return func(i interface{}) string {
		name, ok := i.(string)
		if !ok {
			return "???"
		}

		label := fmt.Sprintf("%-7s", strings.ToUpper(name))
		if !color {
			return label
		}
		style, ok := levelStyles[name]
		if !ok {
			return label
		}
		return style.Render(label)
	}
}

// IsTerminal reports whether w is a terminal, including Cygwin ptys.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
