// Package state persists the parts of a session that outlive it: aliases
// and to-do items.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/mjanumpa/magicsh/core/shellerr"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// DefaultFileName is where the session is kept when nothing else is
// configured, relative to the startup directory.
const DefaultFileName = "shell_config.json"

// SessionConfig is the durable record of a session.
type SessionConfig struct {
	Aliases   map[string]string `json:"aliases"`
	TodoItems []string          `json:"todo_items"`
}

// NewSessionConfig returns an empty configuration.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{
		Aliases:   make(map[string]string),
		TodoItems: []string{},
	}
}

func (c *SessionConfig) normalize() {
	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
	if c.TodoItems == nil {
		c.TodoItems = []string{}
	}
}

// Store reads and writes a SessionConfig to a single file.
type Store struct {
	Fs   afero.Fs
	Path string
}

// NewStore creates a store for the file at path.
func NewStore(fsys afero.Fs, path string) *Store {
	return &Store{Fs: fsys, Path: path}
}

func (s *Store) isYAML() bool {
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Load reads the session. A missing file yields an empty session and no
// error. An unreadable or corrupt file yields an empty session and a
// *shellerr.StateError the caller may report.
func (s *Store) Load() (*SessionConfig, error) {
	contents, err := afero.ReadFile(s.Fs, s.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NewSessionConfig(), nil
	case err != nil:
		return NewSessionConfig(), &shellerr.StateError{Path: s.Path, Err: err}
	}

	var out SessionConfig
	if err := s.decode(contents, &out); err != nil {
		return NewSessionConfig(), &shellerr.StateError{Path: s.Path, Err: err}
	}
	out.normalize()
	return &out, nil
}

// decode picks the parser by extension. JSON files may contain surrogate
// pair and "\/" escapes that the YAML scanner rejects.
func (s *Store) decode(contents []byte, out *SessionConfig) error {
	if s.isYAML() {
		return yaml.Unmarshal(contents, out)
	}
	return json.Unmarshal(contents, out)
}

// Save replaces the file with cfg. The previous contents are never merged.
func (s *Store) Save(cfg *SessionConfig) error {
	toWrite := *cfg
	toWrite.normalize()

	var (
		data []byte
		err  error
	)
	if s.isYAML() {
		data, err = yaml.Marshal(&toWrite)
	} else {
		data, err = json.MarshalIndent(&toWrite, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := afero.TempFile(s.Fs, dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.Fs.Remove(tmpName)
		return fmt.Errorf("saving session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		s.Fs.Remove(tmpName)
		return fmt.Errorf("saving session: %w", err)
	}
	if err := s.Fs.Rename(tmpName, s.Path); err != nil {
		s.Fs.Remove(tmpName)
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
