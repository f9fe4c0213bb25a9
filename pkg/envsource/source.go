// Package envsource abstracts where connection variables come from, so the
// builder never has to touch the process environment directly.
package envsource

import (
	"os"
	"strings"
)

// Source resolves a variable by name.
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a lookup function to Source.
type SourceFunc func(key string) (string, bool)

func (f SourceFunc) Lookup(key string) (string, bool) { return f(key) }

// Env reads the process environment.
func Env() Source { return SourceFunc(os.LookupEnv) }

// Map is an in-memory Source, mostly for tests and file-backed sources.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

type chain []Source

// Chain consults sources in order; the first non-blank value wins.
func Chain(sources ...Source) Source {
	out := make(chain, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (c chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(key); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// Get returns the value for key, treating blank values as absent.
func Get(src Source, key string) string {
	if src == nil {
		return ""
	}
	v, ok := src.Lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return ""
	}
	return v
}
