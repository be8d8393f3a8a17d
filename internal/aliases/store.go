package aliases

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/danieljhkim/p/internal/fsops"
	"github.com/danieljhkim/p/internal/logger"
)

// Store persists a Mapping between invocations.
type Store interface {
	// Load returns the persisted mapping. A missing or unreadable backing
	// file yields an empty mapping, never an error.
	Load() Mapping

	// Save replaces the persisted mapping in full.
	Save(m Mapping) error

	// Path returns the location of the backing file.
	Path() string
}

// FileStore implements Store as a single JSON object on disk.
//
// Members whose value is not a string are not aliases. They are left out of
// the loaded Mapping and written back unchanged by the next Save unless the
// Mapping now holds the same key.
type FileStore struct {
	fs     fsops.FS
	path   string
	logger *slog.Logger

	// other holds the non-string members seen by the last Load
	other map[string]json.RawMessage
}

// NewFileStore creates a FileStore backed by the JSON file at path.
func NewFileStore(fs fsops.FS, path string, log *slog.Logger) *FileStore {
	if log == nil {
		log = logger.Nop()
	}
	return &FileStore{fs: fs, path: path, logger: log}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the mapping from the backing file. Anything other than a JSON
// object is treated as an empty mapping.
func (s *FileStore) Load() Mapping {
	s.other = nil

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("alias file not found, starting empty", "path", s.path)
		} else {
			s.logger.Warn("failed to read alias file", "path", s.path, "error", err)
		}
		return Mapping{}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("alias file is not a JSON object, ignoring", "path", s.path, "error", err)
		return Mapping{}
	}

	m := make(Mapping, len(raw))
	for name, value := range raw {
		var path string
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) || json.Unmarshal(value, &path) != nil {
			if s.other == nil {
				s.other = make(map[string]json.RawMessage)
			}
			s.other[name] = value
			continue
		}
		m[name] = path
	}
	if len(s.other) > 0 {
		s.logger.Warn("skipping non-string alias values", "path", s.path, "count", len(s.other))
	}

	s.logger.Debug("loaded aliases", "path", s.path, "count", len(m))
	return m
}

// Save writes the mapping as indented JSON, replacing the file atomically.
func (s *FileStore) Save(m Mapping) error {
	doc := make(map[string]any, len(m)+len(s.other))
	for name, value := range s.other {
		if _, ok := m[name]; !ok {
			doc[name] = value
		}
	}
	for name, path := range m {
		doc[name] = path
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to marshal aliases: %w", err)
	}

	if err := s.fs.AtomicWrite(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write alias file: %w", err)
	}

	s.logger.Debug("saved aliases", "path", s.path, "count", len(m))
	return nil
}
