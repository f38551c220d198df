package templatestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// templateFile is the on-disk layout of <dir>/<type>.yaml.
type templateFile struct {
	Templates notification.Templates `yaml:"templates"`
}

// YAMLStore reads templates from one YAML file per notification type.
// Files are read on every call; wrap it with CachedStore for hot paths.
type YAMLStore struct {
	fsys fs.FS
}

// NewYAMLStore creates a store reading from dir.
func NewYAMLStore(dir string) *YAMLStore {
	return &YAMLStore{fsys: os.DirFS(dir)}
}

// NewYAMLStoreFS creates a store reading from fsys, e.g. an embed.FS.
func NewYAMLStoreFS(fsys fs.FS) *YAMLStore {
	return &YAMLStore{fsys: fsys}
}

func (s *YAMLStore) GetTemplates(ctx context.Context, notificationType string) (notification.Templates, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validTypeName(notificationType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, notificationType)
	}

	data, err := fs.ReadFile(s.fsys, notificationType+".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrTemplatesNotFound
		}
		return nil, fmt.Errorf("templatestore: read %s: %w", notificationType, err)
	}

	var f templateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrInvalidTemplates, err)
	}
	if err := f.Templates.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidTemplates, err)
	}
	return f.Templates, nil
}

// validTypeName rejects names that would escape the template directory.
func validTypeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
