package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/voidbrain/webcli/pkg/logging"
)

// DefaultPath is where settings live when no path is configured.
const DefaultPath = "~/.webcli/settings.json"

// FileStore keeps settings in a JSON document under StorageKey. Other keys
// in the document are preserved. FileStore is safe for concurrent use.
type FileStore struct {
	path      string
	publisher Publisher
	logger    logging.Logger

	mu      sync.RWMutex
	current Settings
}

// NewFileStore opens the document at path, creating it with defaults when it
// is missing or unreadable. publisher may be nil.
func NewFileStore(path string, publisher Publisher) (*FileStore, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand settings path: %w", err)
	}

	s := &FileStore{
		path:      expanded,
		publisher: publisher,
		logger:    logging.NewComponentLogger("settings"),
		current:   Defaults(),
	}
	s.load()
	return s, nil
}

// Path returns the expanded document path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if err == nil && gjson.ValidBytes(data) {
		if stored := gjson.GetBytes(data, StorageKey); stored.IsObject() {
			for _, key := range Keys {
				value := stored.Get(key).String()
				if Validate(key, value) == nil {
					s.current = s.current.With(key, value)
				}
			}
			return
		}
	}
	if err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to load settings", "path", s.path, "error", err)
	}
	// First run or unreadable document: start from the defaults and save them.
	if err := s.persist(s.writeAll(s.current)); err != nil {
		s.logger.Error("failed to save settings", "path", s.path, "error", err)
	}
}

// Snapshot returns the current settings.
func (s *FileStore) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Get returns one setting.
func (s *FileStore) Get(key string) (string, bool) {
	return s.Snapshot().Get(key)
}

// Set validates and stores one setting. The in-memory value changes even
// when writing the document fails; the write error is returned.
func (s *FileStore) Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = s.current.With(key, value)
	snapshot := s.current
	err := s.persist(func(doc []byte) ([]byte, error) {
		return sjson.SetBytes(doc, StorageKey+"."+key, value)
	})
	s.mu.Unlock()

	s.publish(snapshot)
	return err
}

// Update applies several settings at once. Nothing changes if any pair is invalid.
func (s *FileStore) Update(partial map[string]string) error {
	for key, value := range partial {
		if err := Validate(key, value); err != nil {
			return err
		}
	}
	s.mu.Lock()
	for key, value := range partial {
		s.current = s.current.With(key, value)
	}
	snapshot := s.current
	err := s.persist(s.writeAll(snapshot))
	s.mu.Unlock()

	s.publish(snapshot)
	return err
}

// Reset restores the defaults.
func (s *FileStore) Reset() error {
	s.mu.Lock()
	s.current = Defaults()
	snapshot := s.current
	err := s.persist(s.writeAll(snapshot))
	s.mu.Unlock()

	s.publish(snapshot)
	return err
}

func (s *FileStore) writeAll(settings Settings) func([]byte) ([]byte, error) {
	return func(doc []byte) ([]byte, error) {
		return sjson.SetBytes(doc, StorageKey, settings)
	}
}

// persist rewrites the document through update. Must be called with the lock held
// or before the store is shared.
func (s *FileStore) persist(update func(doc []byte) ([]byte, error)) error {
	doc, err := os.ReadFile(s.path)
	if err != nil || !gjson.ValidBytes(doc) {
		doc = []byte("{}")
	}
	doc, err = update(doc)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(s.path, doc, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func (s *FileStore) publish(snapshot Settings) {
	if s.publisher != nil {
		s.publisher.Emit(ChangedEvent, snapshot)
	}
}
