package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/openloop-cli/internal/domain"
	"github.com/bnema/openloop-cli/internal/ports"
)

const (
	tokensFileMode  = 0o600
	tokensDirMode   = 0o700
	tempFilePattern = ".tokens-*.txt.tmp"
)

type Paths struct {
	Credentials string
	Tokens      string
	Proxies     string
}

// Store reads line-delimited account files. Blank lines are ignored.
type Store struct {
	paths Paths
	mu    *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.CredentialSource = (*Store)(nil)
	_ ports.TokenStore       = (*Store)(nil)
	_ ports.EgressSource     = (*Store)(nil)
)

func NewStore(paths Paths) (*Store, error) {
	if strings.TrimSpace(paths.Tokens) == "" {
		return nil, errors.New("tokens path is empty")
	}

	tokensPath, err := filepath.Abs(paths.Tokens)
	if err != nil {
		return nil, fmt.Errorf("resolve tokens path: %w", err)
	}
	paths.Tokens = filepath.Clean(tokensPath)

	return &Store{paths: paths, mu: lockForPath(paths.Tokens)}, nil
}

func (s *Store) LoadCredentials(ctx context.Context) ([]domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := readLines(s.paths.Credentials)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: accounts file %s not found", domain.ErrConfiguration, s.paths.Credentials)
		}
		return nil, fmt.Errorf("read accounts file: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoCredentials, s.paths.Credentials)
	}

	credentials := make([]domain.Credential, 0, len(lines))
	for i, line := range lines {
		credential, err := domain.ParseCredential(line)
		if err != nil {
			return nil, fmt.Errorf("accounts file line %d: %w", i+1, err)
		}
		credentials = append(credentials, credential)
	}

	return credentials, nil
}

func (s *Store) LoadTokens(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, err := readLines(s.paths.Tokens)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: token file %s not found, run `openloop setup` first", domain.ErrConfiguration, s.paths.Tokens)
		}
		return nil, fmt.Errorf("read token file: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoTokens, s.paths.Tokens)
	}

	return lines, nil
}

func (s *Store) LoadEgress(ctx context.Context) ([]domain.Egress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.paths.Proxies) == "" {
		return nil, nil
	}

	lines, err := readLines(s.paths.Proxies)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read proxy file: %w", err)
	}

	bindings := make([]domain.Egress, 0, len(lines))
	for i, line := range lines {
		egress, err := domain.ParseEgress(line)
		if err != nil {
			return nil, fmt.Errorf("proxy file line %d: %w", i+1, err)
		}
		bindings = append(bindings, egress)
	}

	return bindings, nil
}

// ReplaceTokens writes the whole list to a temp file and renames it over
// the token file so readers never observe a partial list.
func (s *Store) ReplaceTokens(ctx context.Context, tokens []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return errors.New("refusing to write an empty token")
		}
		buf.WriteString(token)
		buf.WriteByte('\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeAtomic(s.paths.Tokens, buf.Bytes())
}

func readLines(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path is empty: %w", os.ErrNotExist)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), tokensDirMode); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp token file: %w", err)
	}

	if err := tempFile.Chmod(tokensFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp token file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp token file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}

	cleanup = false
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
