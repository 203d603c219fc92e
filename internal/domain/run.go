package domain

import "time"

// AccountRun is the per-tick state of one account. It is never shared
// across ticks or accounts.
type AccountRun struct {
	Index    int
	Token    string
	Egress   Egress
	EgressIP string
}

// Label is the 1-based account label used in logs and summaries.
func (r AccountRun) Label() int {
	return r.Index + 1
}

type AccountReport struct {
	Index             int
	EgressIP          string
	MissionsListed    bool
	MissionsAvailable int
	MissionsCompleted int
	MissionsFailed    int
	AuthExpired       bool
	ShareAttempted    bool
	Shared            bool
	Quality           int
	ShareMessage      string
	Balance           float64
	Errors            []string
}

type TickReport struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Accounts   []AccountReport
}

func (r TickReport) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r TickReport) SharedCount() int {
	count := 0
	for _, account := range r.Accounts {
		if account.Shared {
			count++
		}
	}
	return count
}
