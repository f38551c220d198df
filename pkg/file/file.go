package file

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// DefaultMaxSize caps the size of a loaded attachment.
const DefaultMaxSize int64 = 10 << 20

// Content is a loaded attachment.
type Content struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Loader fetches attachment bytes by reference.
type Loader interface {
	Load(ctx context.Context, ref string) (*Content, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, ref string) (*Content, error)

func (f LoaderFunc) Load(ctx context.Context, ref string) (*Content, error) {
	return f(ctx, ref)
}

// Mux routes references by scheme ("s3://key", "file://path"). References
// without a scheme go to the fallback loader.
type Mux struct {
	loaders  map[string]Loader
	fallback Loader
}

// NewMux creates a router with fallback for scheme-less references. fallback may be nil.
func NewMux(fallback Loader) *Mux {
	return &Mux{loaders: make(map[string]Loader), fallback: fallback}
}

// Handle registers l for scheme. Not safe for use concurrently with Load.
func (m *Mux) Handle(scheme string, l Loader) {
	m.loaders[strings.ToLower(scheme)] = l
}

func (m *Mux) Load(ctx context.Context, ref string) (*Content, error) {
	scheme, rest, ok := strings.Cut(ref, "://")
	if !ok {
		if m.fallback == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, ref)
		}
		return m.fallback.Load(ctx, ref)
	}
	l, found := m.loaders[strings.ToLower(scheme)]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
	return l.Load(ctx, rest)
}

// DetectMIMEType resolves the MIME type from the file extension and falls
// back to content sniffing.
// http.DetectContentType reads at most the first 512 bytes.
func DetectMIMEType(name string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		return t
	}
	return http.DetectContentType(data)
}

// SanitizeFilename removes any path components and dangerous characters from a filename.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// readLimited reads r up to maxSize bytes. A larger stream fails with ErrFileTooLarge.
func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("more than %d bytes: %w", maxSize, ErrFileTooLarge)
	}
	return data, nil
}
