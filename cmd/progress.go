package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/openloop-cli/internal/adapters/logging"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	progressSpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	progressDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	progressFailedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	progressMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// progress draws a spinner while a command's task runs. It only draws on an
// interactive terminal and never when the user asked for quiet output.
type progress struct {
	out         io.Writer
	interactive bool
	now         func() time.Time
}

func newProgress(out io.Writer, quiet bool) progress {
	return progress{
		out:         out,
		interactive: !quiet && logging.IsTerminal(out),
		now:         time.Now,
	}
}

// Interactive reports whether Run will draw. Commands lower their log level
// when it does so log lines do not tear the spinner.
func (p progress) Interactive() bool {
	return p.interactive
}

func (p progress) Run(ctx context.Context, label string, task func(context.Context) error) error {
	if !p.interactive {
		return task(ctx)
	}

	program := tea.NewProgram(
		newProgressModel(label, p.now, func() tea.Msg {
			started := p.now()
			err := task(ctx)
			return taskFinishedMsg{err: err, elapsed: p.now().Sub(started)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return err
	}
	model, ok := final.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected progress model type %T", final)
	}
	return model.err
}

type taskFinishedMsg struct {
	err     error
	elapsed time.Duration
}

type progressModel struct {
	spinner  spinner.Model
	label    string
	task     tea.Cmd
	started  time.Time
	now      func() time.Time
	elapsed  time.Duration
	err      error
	finished bool
}

func newProgressModel(label string, now func() time.Time, task tea.Cmd) progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(progressSpinnerStyle)),
		label:   strings.TrimSuffix(label, "..."),
		task:    task,
		started: now(),
		now:     now,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskFinishedMsg:
		m.finished = true
		m.err = msg.err
		m.elapsed = msg.elapsed
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View keeps a one-line result on screen once the task has finished.
func (m progressModel) View() string {
	if !m.finished {
		elapsed := m.now().Sub(m.started)
		return fmt.Sprintf("%s %s... %s", m.spinner.View(), m.label, progressMutedStyle.Render(formatElapsed(elapsed)))
	}

	if m.err != nil {
		return fmt.Sprintf("%s %s failed after %s\n", progressFailedStyle.Render("x"), m.label, formatElapsed(m.elapsed))
	}
	return fmt.Sprintf("%s %s done in %s\n", progressDoneStyle.Render("ok"), m.label, formatElapsed(m.elapsed))
}

func formatElapsed(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
