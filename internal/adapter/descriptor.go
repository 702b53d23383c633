package adapter

import (
	"errors"
	"strings"
)

// ErrNotDescriptor reports a connection string with no recognizable
// type prefix. Callers may fall back to a named target from configuration.
var ErrNotDescriptor = errors.New("not a connection descriptor")

// ParseDescriptor splits a connection descriptor into a target type and a
// driver DSN. Accepted forms:
//
//	postgres://user@host/db   URL form; the whole descriptor is the DSN
//	duckdb:analytics.db       type:dsn form
//	sqlite::memory:           type:dsn form (DSN may itself contain colons)
//
// A descriptor without a type prefix returns ErrNotDescriptor.
func ParseDescriptor(desc string) (targetType, dsn string, err error) {
	if scheme, _, found := strings.Cut(desc, "://"); found {
		targetType = normalizeType(scheme)
		if !IsRegistered(targetType) {
			return "", "", &UnknownAdapterError{Type: scheme, Available: ListAdapters()}
		}
		// URL-style drivers take the full descriptor as their DSN.
		return targetType, desc, nil
	}

	prefix, rest, found := strings.Cut(desc, ":")
	if !found {
		return "", "", ErrNotDescriptor
	}
	targetType = normalizeType(prefix)
	if !IsRegistered(targetType) {
		return "", "", &UnknownAdapterError{Type: prefix, Available: ListAdapters()}
	}
	return targetType, rest, nil
}

func normalizeType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "postgresql" {
		return "postgres"
	}
	return s
}
