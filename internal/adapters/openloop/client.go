package openloop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/bnema/openloop-cli/internal/ports"
)

const (
	DefaultBaseURL        = "https://api.openloop.so"
	DefaultIPEchoURL      = "https://api.ipify.org?format=json"
	DefaultRequestTimeout = 30 * time.Second

	maxResponseBytes = 1 << 20
	maxErrorBodyLen  = 256
	userAgent        = "openloop-cli"
)

type Options struct {
	BaseURL        string
	IPEchoURL      string
	RequestTimeout time.Duration
	// Transport is cloned for every egress. Defaults to http.DefaultTransport.
	Transport *http.Transport
}

// Client talks to the OpenLoop API. Each call is a single attempt; callers
// layer retries on top.
type Client struct {
	baseURL        string
	ipEchoURL      string
	requestTimeout time.Duration
	transport      *http.Transport

	mu      sync.Mutex
	clients map[domain.Egress]*http.Client
}

var _ ports.RemoteService = (*Client)(nil)

func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid api base url %q", domain.ErrConfiguration, baseURL)
	}

	ipEchoURL := strings.TrimSpace(opts.IPEchoURL)
	if ipEchoURL == "" {
		ipEchoURL = DefaultIPEchoURL
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	transport := opts.Transport
	if transport == nil {
		defaultTransport, ok := http.DefaultTransport.(*http.Transport)
		if !ok {
			return nil, errors.New("default transport is not an *http.Transport")
		}
		transport = defaultTransport
	}

	return &Client{
		baseURL:        baseURL,
		ipEchoURL:      ipEchoURL,
		requestTimeout: timeout,
		transport:      transport,
		clients:        map[domain.Egress]*http.Client{},
	}, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Data struct {
		AccessToken string `json:"accessToken"`
	} `json:"data"`
}

type registerRequest struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	InviteCode string `json:"inviteCode"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type missionsResponse struct {
	Data struct {
		Missions []missionSchema `json:"missions"`
	} `json:"data"`
}

type missionSchema struct {
	MissionID flexibleID `json:"missionId"`
	Status    string     `json:"status"`
}

type shareRequest struct {
	Quality int `json:"quality"`
}

type shareResponse struct {
	Message string `json:"message"`
	Data    struct {
		Balances struct {
			Point float64 `json:"POINT"`
		} `json:"balances"`
	} `json:"data"`
}

type ipResponse struct {
	IP string `json:"ip"`
}

// flexibleID accepts both string and numeric JSON identifiers.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*id = flexibleID(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("decode mission id: %w", err)
	}
	*id = flexibleID(number.String())
	return nil
}

func (c *Client) Authenticate(ctx context.Context, credential domain.Credential, egress domain.Egress) (string, error) {
	const op = "authenticate"

	result, err := c.roundTrip(ctx, egress, op, http.MethodPost, c.apiURL("/users/login"), "", loginRequest{
		Username: credential.Identity,
		Password: credential.Secret,
	})
	if err != nil {
		return "", err
	}
	if !result.ok() {
		return "", fmt.Errorf("%w: %w", domain.ErrAuthFailed, result.serviceError(op))
	}

	var payload loginResponse
	if err := result.decode(op, &payload); err != nil {
		return "", err
	}
	token := strings.TrimSpace(payload.Data.AccessToken)
	if token == "" {
		return "", &domain.ServiceError{Op: op, Status: result.status, Err: errors.New("response missing access token")}
	}

	return token, nil
}

func (c *Client) Register(ctx context.Context, credential domain.Credential, inviteCode string, egress domain.Egress) (string, error) {
	const op = "register"

	result, err := c.roundTrip(ctx, egress, op, http.MethodPost, c.apiURL("/users/register"), "", registerRequest{
		Name:       credential.Identity,
		Username:   credential.Identity,
		Password:   credential.Secret,
		InviteCode: inviteCode,
	})
	if err != nil {
		return "", err
	}
	if result.status == http.StatusUnauthorized {
		return "", fmt.Errorf("%s %s: %w", op, domain.MaskIdentity(credential.Identity), domain.ErrAlreadyRegistered)
	}
	if !result.ok() {
		return "", result.serviceError(op)
	}

	var payload messageResponse
	if err := result.decode(op, &payload); err != nil {
		return "", err
	}

	return payload.Message, nil
}

func (c *Client) ListMissions(ctx context.Context, token string, egress domain.Egress) ([]domain.Mission, error) {
	const op = "list missions"

	result, err := c.roundTrip(ctx, egress, op, http.MethodGet, c.apiURL("/missions"), token, nil)
	if err != nil {
		return nil, err
	}
	if result.status == http.StatusUnauthorized {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrAuthExpired)
	}
	if !result.ok() {
		return nil, result.serviceError(op)
	}

	var payload missionsResponse
	if err := result.decode(op, &payload); err != nil {
		return nil, err
	}

	missions := make([]domain.Mission, 0, len(payload.Data.Missions))
	for _, mission := range payload.Data.Missions {
		missions = append(missions, domain.Mission{
			ID:     string(mission.MissionID),
			Status: domain.MissionStatus(mission.Status),
		})
	}

	return missions, nil
}

func (c *Client) CompleteMission(ctx context.Context, missionID string, token string, egress domain.Egress) (string, error) {
	const op = "complete mission"

	endpoint := c.apiURL("/missions/" + url.PathEscape(missionID) + "/complete")
	result, err := c.roundTrip(ctx, egress, op, http.MethodGet, endpoint, token, nil)
	if err != nil {
		return "", err
	}
	if !result.ok() {
		return "", result.serviceError(op)
	}

	var payload messageResponse
	if err := result.decode(op, &payload); err != nil {
		return "", err
	}

	return payload.Message, nil
}

func (c *Client) ShareBandwidth(ctx context.Context, token string, quality int, egress domain.Egress) (domain.ShareResult, error) {
	const op = "share bandwidth"

	result, err := c.roundTrip(ctx, egress, op, http.MethodPost, c.apiURL("/bandwidth/share"), token, shareRequest{Quality: quality})
	if err != nil {
		return domain.ShareResult{}, err
	}
	if !result.ok() {
		return domain.ShareResult{}, result.serviceError(op)
	}

	var payload shareResponse
	if err := result.decode(op, &payload); err != nil {
		return domain.ShareResult{}, err
	}

	return domain.ShareResult{
		Message:      payload.Message,
		TotalBalance: payload.Data.Balances.Point,
	}, nil
}

func (c *Client) ResolveEgressIP(ctx context.Context, egress domain.Egress) (string, error) {
	const op = "resolve egress ip"

	result, err := c.roundTrip(ctx, egress, op, http.MethodGet, c.ipEchoURL, "", nil)
	if err != nil {
		return "", err
	}
	if !result.ok() {
		return "", result.serviceError(op)
	}

	var payload ipResponse
	if err := result.decode(op, &payload); err != nil {
		return "", err
	}
	if strings.TrimSpace(payload.IP) == "" {
		return "", &domain.ServiceError{Op: op, Status: result.status, Err: errors.New("response missing ip")}
	}

	return payload.IP, nil
}

type roundTripResult struct {
	status int
	body   []byte
}

func (r roundTripResult) ok() bool {
	return r.status >= http.StatusOK && r.status < http.StatusMultipleChoices
}

func (r roundTripResult) serviceError(op string) *domain.ServiceError {
	body := strings.TrimSpace(string(r.body))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen] + "..."
	}
	return &domain.ServiceError{Op: op, Status: r.status, Body: body}
}

func (r roundTripResult) decode(op string, out any) error {
	if err := json.Unmarshal(r.body, out); err != nil {
		return &domain.ServiceError{Op: op, Status: r.status, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, egress domain.Egress, op, method, endpoint, token string, body any) (roundTripResult, error) {
	httpClient, err := c.clientFor(egress)
	if err != nil {
		return roundTripResult{}, &domain.ServiceError{Op: op, Err: err}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return roundTripResult{}, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return roundTripResult{}, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return roundTripResult{}, &domain.ServiceError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return roundTripResult{}, &domain.ServiceError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	return roundTripResult{status: resp.StatusCode, body: payload}, nil
}

// clientFor returns one cached client per egress so connections are reused
// across ticks.
func (c *Client) clientFor(egress domain.Egress) (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[egress]; ok {
		return client, nil
	}

	transport := c.transport.Clone()
	if !egress.Direct() {
		proxyURL, err := egress.URL()
		if err != nil {
			return nil, fmt.Errorf("parse proxy %s: %w", egress.Redacted(), err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	client := &http.Client{Transport: transport}
	c.clients[egress] = client
	return client, nil
}

func (c *Client) apiURL(path string) string {
	return c.baseURL + path
}
