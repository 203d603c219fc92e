package domain

import (
	"fmt"
	"strings"
)

type Credential struct {
	Identity string
	Secret   string
}

// ParseCredential parses one "identity|secret" record.
func ParseCredential(line string) (Credential, error) {
	identity, secret, ok := strings.Cut(strings.TrimSpace(line), "|")
	if !ok {
		return Credential{}, fmt.Errorf("%w: credential record %q is missing the '|' separator", ErrConfiguration, MaskIdentity(line))
	}

	identity = strings.TrimSpace(identity)
	secret = strings.TrimSpace(secret)
	if identity == "" {
		return Credential{}, fmt.Errorf("%w: credential record has an empty identity", ErrConfiguration)
	}
	if secret == "" {
		return Credential{}, fmt.Errorf("%w: credential %s has an empty secret", ErrConfiguration, MaskIdentity(identity))
	}

	return Credential{Identity: identity, Secret: secret}, nil
}

// MaskIdentity keeps the first and last characters of the local part of an identity.
func MaskIdentity(identity string) string {
	identity = strings.TrimSpace(identity)
	local, domainPart, hasAt := strings.Cut(identity, "@")
	if len(local) <= 2 {
		local = strings.Repeat("*", len(local))
	} else {
		local = local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:]
	}
	if !hasAt {
		return local
	}
	return local + "@" + domainPart
}

// MaskToken shortens a bearer token for display.
func MaskToken(token string) string {
	if len(token) <= 12 {
		return strings.Repeat("*", len(token))
	}
	return token[:6] + "..." + token[len(token)-4:]
}
