package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Egress is a proxy URI; the zero value routes directly.
type Egress string

const DirectEgress Egress = ""

func (e Egress) Direct() bool {
	return e == DirectEgress
}

func (e Egress) URL() (*url.URL, error) {
	return url.Parse(string(e))
}

// Redacted hides proxy credentials.
func (e Egress) Redacted() string {
	if e.Direct() {
		return "direct"
	}
	parsed, err := e.URL()
	if err != nil {
		return "invalid proxy"
	}
	return parsed.Redacted()
}

var supportedProxySchemes = map[string]struct{}{
	"http":    {},
	"https":   {},
	"socks5":  {},
	"socks5h": {},
}

// ParseEgress validates one proxy line. Lines without a scheme are treated
// as http proxies.
func ParseEgress(raw string) (Egress, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty proxy binding", ErrConfiguration)
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: parse proxy binding: %v", ErrConfiguration, err)
	}
	if _, ok := supportedProxySchemes[strings.ToLower(parsed.Scheme)]; !ok {
		return "", fmt.Errorf("%w: unsupported proxy scheme %q", ErrConfiguration, parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return "", fmt.Errorf("%w: proxy binding %q has no host", ErrConfiguration, parsed.Redacted())
	}

	return Egress(parsed.String()), nil
}
