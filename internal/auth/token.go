// Package auth finds and stores the JWT used as the API bearer token.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
)

// EnvToken is the environment variable consulted after the --token flag.
const EnvToken = "NXTWATCH_JWT_TOKEN"

// Source says where a token was found.
type Source string

const (
	SourceNone Source = ""
	SourceFlag Source = "flag"
	SourceEnv  Source = "env"
	SourceFile Source = "file"
)

// Resolve returns the first non-empty token from the flag value, the
// environment, and the token file. A missing file is not an error; the
// caller decides whether an empty token is acceptable.
func Resolve(flagToken, tokenFile string) (string, Source, error) {
	if t := strings.TrimSpace(flagToken); t != "" {
		return t, SourceFlag, nil
	}
	if t := strings.TrimSpace(os.Getenv(EnvToken)); t != "" {
		return t, SourceEnv, nil
	}
	if tokenFile == "" {
		return "", SourceNone, nil
	}
	b, err := os.ReadFile(tokenFile)
	if errors.Is(err, os.ErrNotExist) {
		return "", SourceNone, nil
	}
	if err != nil {
		return "", SourceNone, fmt.Errorf("read token file: %w", err)
	}
	if t := strings.TrimSpace(string(b)); t != "" {
		return t, SourceFile, nil
	}
	return "", SourceNone, nil
}

// Save writes token to path readable only by the current user.
func Save(path, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the token file. Removing a missing file succeeds.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// TokenSource wraps token for use with oauth2.Transport, which sends it as
// "Authorization: Bearer <token>".
func TokenSource(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

// Mask hides all but the edges of a token for display.
func Mask(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
