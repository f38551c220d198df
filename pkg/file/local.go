package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage loads attachments from the local filesystem.
// All reads are confined to baseDir to prevent path traversal attacks.
type LocalStorage struct {
	baseDir string // Absolute path
	maxSize int64
}

// LocalOption defines a function that configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithLocalMaxSize overrides DefaultMaxSize.
func WithLocalMaxSize(n int64) LocalOption {
	return func(s *LocalStorage) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// NewLocalStorage creates a loader reading below baseDir.
func NewLocalStorage(baseDir string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	// Must resolve to absolute path for security - prevents relative path confusion
	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToGetAbsolutePath, err)
	}

	s := &LocalStorage{baseDir: absBaseDir, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load reads the file at path relative to the base directory.
func (s *LocalStorage) Load(ctx context.Context, path string) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if info.Size() > s.maxSize {
		return nil, fmt.Errorf("file size %d bytes exceeds %d bytes limit: %w", info.Size(), s.maxSize, ErrFileTooLarge)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	data, err := readLimited(f, s.maxSize)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(absPath)
	return &Content{Name: name, MIMEType: DetectMIMEType(name, data), Data: data}, nil
}

// resolvePath ensures the resolved path stays within baseDir.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	path = filepath.Clean(path)
	absPath := filepath.Join(s.baseDir, path)

	absPath, err := filepath.Abs(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	return absPath, nil
}
