// Package storage abstracts uploaded-document file handling.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore persists uploaded files and removes them when a document is deleted.
type FileStore interface {
	// Save writes the content to a new file and returns the stored path.
	Save(originalName string, content io.Reader) (string, error)
	// Remove deletes a previously stored file. Missing files are not an error.
	Remove(path string) error
}

type localStore struct {
	dir string
}

// NewLocalStore creates a FileStore rooted at dir, creating it if needed.
func NewLocalStore(dir string) (FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localStore{dir: dir}, nil
}

func (s *localStore) Save(originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

func (s *localStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
