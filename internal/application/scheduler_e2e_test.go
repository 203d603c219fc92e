package application

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/openloop-cli/internal/adapters/openloop"
	filestore "github.com/bnema/openloop-cli/internal/adapters/store/file"
	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type remoteRecorder struct {
	mu        sync.Mutex
	logins    []string
	listings  map[string]int
	completed map[string][]string
	shares    map[string]int
}

func newRemoteServer(t *testing.T) (*httptest.Server, *remoteRecorder) {
	t.Helper()

	rec := &remoteRecorder{
		listings:  map[string]int{},
		completed: map[string][]string{},
		shares:    map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		rec.mu.Lock()
		rec.logins = append(rec.logins, body.Username)
		rec.mu.Unlock()

		fmt.Fprintf(w, `{"data":{"accessToken":"fresh-%s"}}`, strings.Split(body.Username, "@")[0])
	})
	mux.HandleFunc("GET /missions", func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		rec.mu.Lock()
		rec.listings[token]++
		rec.mu.Unlock()

		switch token {
		case "tok-2":
			_, _ = w.Write([]byte(`{"data":{"missions":[{"missionId":"m-a","status":"available"},{"missionId":7,"status":"available"},{"missionId":"m-c","status":"completed"}]}}`))
		case "tok-3":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			_, _ = w.Write([]byte(`{"data":{"missions":[]}}`))
		}
	})
	mux.HandleFunc("GET /missions/{id}/complete", func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		rec.mu.Lock()
		rec.completed[token] = append(rec.completed[token], r.PathValue("id"))
		rec.mu.Unlock()

		_, _ = w.Write([]byte(`{"message":"mission completed"}`))
	})
	mux.HandleFunc("POST /bandwidth/share", func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		rec.mu.Lock()
		rec.shares[token]++
		rec.mu.Unlock()

		_, _ = w.Write([]byte(`{"message":"bandwidth shared","data":{"balances":{"POINT":12.5}}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, rec
}

func TestSchedulerEndToEndExpiredTokenTriggersSingleRefresh(t *testing.T) {
	t.Parallel()

	srv, rec := newRemoteServer(t)

	dir := t.TempDir()
	accounts := filepath.Join(dir, "accounts.txt")
	tokensPath := filepath.Join(dir, "token.txt")
	require.NoError(t, os.WriteFile(accounts, []byte("one@example.com|pw1\ntwo@example.com|pw2\nthree@example.com|pw3\n"), 0o600))
	require.NoError(t, os.WriteFile(tokensPath, []byte("tok-1\ntok-2\ntok-3\n"), 0o600))

	store, err := filestore.NewStore(filestore.Paths{
		Credentials: accounts,
		Tokens:      tokensPath,
		Proxies:     filepath.Join(dir, "proxy.txt"),
	})
	require.NoError(t, err)

	client, err := openloop.NewClient(openloop.Options{BaseURL: srv.URL, RequestTimeout: 5 * time.Second})
	require.NoError(t, err)

	retry := NewRetryExecutor(DefaultMaxAttempts, 0, nil)
	task := NewAccountTask(client, retry, AccountTaskOptions{MissionSpacing: time.Millisecond}, zerolog.Nop())
	refresher := NewTokenRefresher(store, store, client, retry, 2, zerolog.Nop())
	timer := &fakeTimer{}
	reports := make(chan struct{}, 4)

	scheduler := NewScheduler(store, store, task, refresher, timer, nil, SchedulerOptions{
		Interval: 8 * time.Minute,
		Stagger:  time.Millisecond,
		OnTick:   func(domain.TickReport) { reports <- struct{}{} },
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()

	select {
	case <-reports:
	case <-time.After(10 * time.Second):
		t.Fatal("first tick did not finish")
	}

	require.Eventually(t, func() bool {
		return scheduler.State() == StateRunning && timer.Armed()
	}, 5*time.Second, 10*time.Millisecond)

	rec.mu.Lock()
	assert.Equal(t, map[string]int{"tok-1": 1, "tok-2": 1, "tok-3": 1}, rec.listings)
	assert.Equal(t, map[string][]string{"tok-2": {"m-a", "7"}}, rec.completed)
	assert.Equal(t, map[string]int{"tok-1": 1, "tok-2": 1, "tok-3": 1}, rec.shares)
	assert.ElementsMatch(t, []string{"one@example.com", "two@example.com", "three@example.com"}, rec.logins)
	rec.mu.Unlock()

	assert.Equal(t, []time.Duration{8 * time.Minute}, timer.Intervals())
	assert.Equal(t, []string{"fresh-one", "fresh-two", "fresh-three"}, *scheduler.current.Load())

	written, err := os.ReadFile(tokensPath)
	require.NoError(t, err)
	assert.Equal(t, "fresh-one\nfresh-two\nfresh-three\n", string(written))

	cancel()
	require.NoError(t, <-done)
}
