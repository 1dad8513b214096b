package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Prefs is a small persistent key-value store for UI preferences.
// Every Set rewrites the whole file.
type Prefs struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// GetPrefsPath returns the path to the preference file
func GetPrefsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "prefs.json"), nil
}

// LoadPrefs opens the default preference store.
// A missing or unreadable file yields an empty store along with the error, if any.
func LoadPrefs() (*Prefs, error) {
	path, err := GetPrefsPath()
	if err != nil {
		return &Prefs{values: map[string]string{}}, err
	}
	return OpenPrefs(path)
}

// OpenPrefs opens the preference store at path
func OpenPrefs(path string) (*Prefs, error) {
	p := &Prefs{path: path, values: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("failed to read prefs file: %w", err)
	}

	if err := json.Unmarshal(data, &p.values); err != nil {
		p.values = map[string]string{}
		return p, fmt.Errorf("failed to parse prefs file: %w", err)
	}
	if p.values == nil {
		p.values = map[string]string{}
	}

	return p, nil
}

// Path returns the backing file
func (p *Prefs) Path() string {
	return p.path
}

// Get returns a stored value
func (p *Prefs) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok
}

// GetOr returns a stored value or def when the key is absent
func (p *Prefs) GetOr(key, def string) string {
	if v, ok := p.Get(key); ok {
		return v
	}
	return def
}

// Set stores a value and persists the store.
// The in-memory value is kept even when writing fails.
func (p *Prefs) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.values[key] = value

	if p.path == "" {
		return fmt.Errorf("prefs store has no backing file")
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("failed to create prefs directory: %w", err)
	}

	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write prefs file: %w", err)
	}
	return nil
}
