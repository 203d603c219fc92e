package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRunsTaskDirectlyWhenNotInteractive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		quiet bool
	}{
		{name: "buffer output"},
		{name: "quiet", quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := newProgress(&out, tt.quiet)
			require.False(t, p.Interactive())

			want := errors.New("login rejected")
			calls := 0
			err := p.Run(context.Background(), "Refreshing tokens...", func(context.Context) error {
				calls++
				return want
			})

			require.ErrorIs(t, err, want)
			assert.Equal(t, 1, calls)
			assert.Empty(t, out.String())
		})
	}
}

func TestProgressModelShowsElapsedThenResult(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	now := start
	clock := func() time.Time { return now }

	model := newProgressModel("Refreshing tokens...", clock, nil)
	now = start.Add(2 * time.Second)
	assert.Contains(t, model.View(), "Refreshing tokens... 2s")

	next, cmd := model.Update(taskFinishedMsg{elapsed: 2300 * time.Millisecond})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	done := next.(progressModel)
	assert.Contains(t, done.View(), "Refreshing tokens done in 2.3s")
	assert.NoError(t, done.err)

	failed, _ := model.Update(taskFinishedMsg{err: errors.New("boom"), elapsed: 40 * time.Millisecond})
	assert.Contains(t, failed.View(), "Refreshing tokens failed after 40ms")
	assert.EqualError(t, failed.(progressModel).err, "boom")
}
