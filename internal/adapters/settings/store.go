// Package settings keeps the underwriter preferences, optionally backed by a
// YAML file.
package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/csg33k/underwriteai/internal/domain"
)

type Store struct {
	mu   sync.RWMutex
	path string
	cur  domain.Settings
}

// Open loads settings from path on top of the defaults. A missing file is not
// an error; an empty path keeps everything in memory.
func Open(path string) (*Store, error) {
	s := &Store{path: path, cur: domain.DefaultSettings()}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.cur); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.cur.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) Get(ctx context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur, nil
}

// Save validates v, writes it to the backing file when there is one and makes
// it current. A failed write leaves the previous settings in place.
func (s *Store) Save(ctx context.Context, v domain.Settings) error {
	if err := v.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path != "" {
		if err := write(s.path, v); err != nil {
			return err
		}
	}
	s.cur = v
	return nil
}

func write(path string, v domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
