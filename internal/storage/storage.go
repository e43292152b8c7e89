package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const (
	// DefaultDirMode matches the permissions of the generated conf.d tree.
	DefaultDirMode  os.FileMode = 0o770
	defaultFileMode os.FileMode = 0o644
	fileExtension               = ".conf"
)

var (
	// ErrProfileWrite matches every *WriteError.
	ErrProfileWrite = errors.New("cannot write profile configuration")
)

// Storage persists rendered profile configurations.
type Storage interface {
	Write(name, content string) (string, error)
}

// WriteError describes a failed step while writing one profile.
type WriteError struct {
	Profile string
	Path    string
	Op      string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s for profile %q: %v", e.Op, e.Path, e.Profile, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrProfileWrite
}

// FileStorage writes each profile to <root>/<name>/<name>.conf.
type FileStorage struct {
	root    string
	dirMode os.FileMode
}

// NewFileStorage creates a FileStorage rooted at root. A zero dirMode falls
// back to DefaultDirMode.
func NewFileStorage(root string, dirMode os.FileMode) *FileStorage {
	if dirMode == 0 {
		dirMode = DefaultDirMode
	}
	return &FileStorage{root: root, dirMode: dirMode}
}

// Path returns the file a profile is written to.
func (s *FileStorage) Path(name string) string {
	return filepath.Join(s.root, name, name+fileExtension)
}

// Write creates missing directories and replaces the profile file with content.
func (s *FileStorage) Write(name, content string) (string, error) {
	if err := os.MkdirAll(s.root, s.dirMode); err != nil {
		return "", &WriteError{Profile: name, Path: s.root, Op: "mkdir", Err: err}
	}

	dir := filepath.Join(s.root, name)
	if err := os.Mkdir(dir, s.dirMode); err != nil && !errors.Is(err, os.ErrExist) {
		return "", &WriteError{Profile: name, Path: dir, Op: "mkdir", Err: err}
	}

	path := s.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultFileMode)
	if err != nil {
		return "", &WriteError{Profile: name, Path: path, Op: "open", Err: err}
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return "", &WriteError{Profile: name, Path: path, Op: "write", Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &WriteError{Profile: name, Path: path, Op: "write", Err: err}
	}

	return path, nil
}

// MemoryStorage keeps rendered profiles in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{files: make(map[string]string)}
}

// Write stores content under name, replacing any previous content.
func (s *MemoryStorage) Write(name, content string) (string, error) {
	s.mu.Lock()
	s.files[name] = content
	s.mu.Unlock()

	return name, nil
}

// Get returns the content stored for name.
func (s *MemoryStorage) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[name]
	return content, ok
}

// Names returns the stored profile names sorted alphabetically.
func (s *MemoryStorage) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
