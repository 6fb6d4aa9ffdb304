package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeetechinnovations/pet-adoption-portal/internal/config"
)

// Storage persists uploaded pet photos.
type Storage interface {
	Save(path string, file io.Reader) error
	Delete(path string) error
	URL(path string) string
}

// New selects the backend from config. Local disk is the default so the
// service runs without any cloud credentials.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case "s3":
		return NewS3Storage(cfg)
	case "local":
		return NewLocalStorage(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// LocalStorage writes files under a root directory served at /uploads.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) Save(path string, file io.Reader) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, file); err != nil {
		os.Remove(full)
		return err
	}
	return nil
}

func (s *LocalStorage) Delete(path string) error {
	return os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
}

func (s *LocalStorage) URL(path string) string {
	return "/uploads/" + strings.TrimPrefix(path, "/")
}
