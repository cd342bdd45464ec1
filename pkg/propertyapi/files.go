package propertyapi

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileOpener resolves the location reference of a picked file to its bytes
type FileOpener interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// FileOpenerFunc adapts a function to FileOpener
type FileOpenerFunc func(ctx context.Context, uri string) (io.ReadCloser, error)

func (f FileOpenerFunc) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	return f(ctx, uri)
}

// LocalFileOpener reads plain paths and file:// URIs from the local filesystem
type LocalFileOpener struct{}

func (LocalFileOpener) Open(_ context.Context, uri string) (io.ReadCloser, error) {
	p := strings.TrimSpace(uri)
	if isURI(p) {
		u, err := url.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("invalid file uri %q: %v", uri, err)
		}
		if u.Scheme != "file" {
			return nil, fmt.Errorf("unsupported file uri scheme %q", u.Scheme)
		}
		p = u.Path
	}
	return os.Open(p)
}

// fileName picks the name of the last path segment of a location reference.
// Only references with a scheme are read as URLs; plain paths are taken verbatim.
func fileName(uri string) string {
	uri = strings.TrimSpace(uri)
	if isURI(uri) {
		if u, err := url.Parse(uri); err == nil && u.Path != "" {
			return path.Base(u.Path)
		}
	}
	return filepath.Base(uri)
}

func isURI(ref string) bool {
	return strings.Contains(ref, "://")
}
