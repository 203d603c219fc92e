package summary

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type TickOptions struct {
	// NextIn is the wait before the next tick; zero hides it.
	NextIn time.Duration
}

// AccountRow is one line of `account list`. Fields are already masked.
type AccountRow struct {
	Index    int
	Identity string
	Token    string
	Proxy    string
}

func Banner(version string) string {
	s := newStyles()
	lines := []string{
		"OpenLoop bandwidth sharing",
		s.header.Render("version " + version),
	}
	return s.banner.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func RenderTick(report domain.TickReport, opts TickOptions) string {
	s := newStyles()

	header := fmt.Sprintf("tick %s  accounts: %d  shared: %d  took %s",
		shortID(report.ID), len(report.Accounts), report.SharedCount(), report.Duration().Round(time.Millisecond))
	lines := []string{
		s.title.Render("Tick summary"),
		s.header.Render(header),
	}

	if len(report.Accounts) == 0 {
		lines = append(lines, s.empty.Render("No account ran in this tick."))
	}

	for _, account := range report.Accounts {
		lines = append(lines, s.section.Render(renderAccount(account, s)))
	}

	if opts.NextIn > 0 {
		lines = append(lines, s.section.Render(s.header.Render(fmt.Sprintf("next tick in %s", formatWait(opts.NextIn)))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(account domain.AccountReport, s styles) string {
	title := fmt.Sprintf("Account %d", account.Index+1)
	if account.EgressIP != "" {
		title += " " + s.header.Render("via "+account.EgressIP)
	}

	parts := []string{
		s.account.Render(title),
		missionLine(account, s),
		shareLine(account, s),
	}

	for _, msg := range account.Errors {
		parts = append(parts, s.failure.Render("! ")+s.detail.Render(truncate(msg, 120)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func missionLine(account domain.AccountReport, s styles) string {
	label := s.key.Render("missions:")
	switch {
	case account.AuthExpired:
		return label + " " + s.warning.Render("token expired, refresh requested")
	case !account.MissionsListed:
		return label + " " + s.failure.Render("unavailable")
	case account.MissionsAvailable == 0:
		return label + " " + s.empty.Render("none available")
	}

	done := float64(account.MissionsCompleted) / float64(account.MissionsAvailable) * 100
	meta := fmt.Sprintf("%d/%d completed", account.MissionsCompleted, account.MissionsAvailable)
	if account.MissionsFailed > 0 {
		meta += s.failure.Render(fmt.Sprintf(" (%d failed)", account.MissionsFailed))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", renderProgressBar(done, 16, s), " ", meta)
}

func shareLine(account domain.AccountReport, s styles) string {
	label := s.key.Render("share:")
	switch {
	case !account.ShareAttempted:
		return label + " " + s.empty.Render("not attempted")
	case !account.Shared:
		return label + " " + s.failure.Render(fmt.Sprintf("failed (quality %d)", account.Quality))
	}

	return fmt.Sprintf("%s %s %s",
		label,
		s.good.Render(fmt.Sprintf("quality %d", account.Quality)),
		s.detail.Render(fmt.Sprintf("balance %s", formatBalance(account.Balance))),
	)
}

func RenderAccounts(rows []AccountRow) string {
	s := newStyles()

	lines := []string{
		s.title.Render("OpenLoop accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(rows))),
	}
	if len(rows) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.Identity))
	}

	for _, row := range rows {
		token := s.failure.Render("no token")
		if row.Token != "" {
			token = s.good.Render(row.Token)
		}
		proxy := s.empty.Render("direct")
		if row.Proxy != "" {
			proxy = s.detail.Render(row.Proxy)
		}

		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.account.Render(fmt.Sprintf("%3d ", row.Index+1)),
			lipgloss.NewStyle().Width(width+2).Render(row.Identity),
			token,
			"  ",
			proxy,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProgressBar(donePercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(donePercent) / 100))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatBalance(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func formatWait(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		minutes := int(d / time.Minute)
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return d.Round(time.Second).String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
