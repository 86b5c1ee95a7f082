package config

import (
	"fmt"
	"net/url"
	"strings"
)

// placeholderValues are the sentinels shipped in example env files. A store
// configured with any of them is treated as absent.
var placeholderValues = map[string]struct{}{
	"placeholder":           {},
	"changeme":              {},
	"change-me":             {},
	"xxx":                   {},
	"your-project-url":      {},
	"your_database_url":     {},
	"your-database-url":     {},
	"your-anon-key":         {},
	"your_anon_key":         {},
	"your-service-role-key": {},
	"your_service_role_key": {},
}

// IsStoreConfigured reports whether a live store URL/key pair is usable: both
// non-empty, neither a placeholder, and the URL a postgres URL with a host.
func IsStoreConfigured(rawURL, key string) bool {
	rawURL = strings.TrimSpace(rawURL)
	key = strings.TrimSpace(key)
	if rawURL == "" || key == "" {
		return false
	}
	if isPlaceholder(rawURL) || isPlaceholder(key) {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return false
	}
	host := u.Hostname()
	if host == "" || isPlaceholder(host) {
		return false
	}
	return true
}

func isPlaceholder(v string) bool {
	v = strings.ToLower(v)
	if _, ok := placeholderValues[v]; ok {
		return true
	}
	return strings.HasPrefix(v, "your-") || strings.HasPrefix(v, "your_")
}

func withPassword(rawURL, key string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid store url: %w", err)
	}
	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, key)
	return u.String(), nil
}

func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || rawURL == "" {
		return ""
	}
	return u.Redacted()
}
