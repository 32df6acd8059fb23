// Package prefs persists small UI preferences across sessions: the last
// submitted username and the chosen theme. Values are opaque strings,
// each key independent of the others.
package prefs

import (
	"github.com/peterbourgon/diskv/v3"
)

// Known preference keys.
const (
	KeyTheme        = "theme"
	KeyLastUsername = "lastUsername"
)

// Store is the persistence contract for preferences. Implementations are
// best-effort; callers may ignore Set errors for fire-and-forget writes.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Load creates a Store backed by diskv using the provided config. A nil
// cfg loads the default config.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &store{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// Preferences are a handful of flat keys; no nesting.
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 64 * 1024,
	}), basePath: basePath}, nil
}

type store struct {
	d        *diskv.Diskv
	basePath string
}

func (s *store) Get(key string) (string, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (s *store) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}
