// Package local stores generated documents on the filesystem and serves them
// back through the API's own download endpoint with a signed token.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"salesdesk/internal/auth"
	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

type localStorage struct {
	dir     string
	baseURL string
	signer  *auth.Signer
}

// NewLocalStorage creates a directory-backed ObjectStorage. Download URLs
// point back at this service's document endpoint, authorized by a JWT bound
// to the object key.
func NewLocalStorage(dir, baseURL string, signer *auth.Signer) (port.ObjectStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage dir %s: %w", dir, err)
	}
	return &localStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		signer:  signer,
	}, nil
}

// resolve maps an object key onto the storage directory, rejecting keys that
// would escape it.
func (l *localStorage) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: invalid key %q", domain.ErrDocumentMissing, key)
	}
	return filepath.Join(l.dir, cleaned), nil
}

func (l *localStorage) Save(_ context.Context, key, _ string, body io.Reader) error {
	path, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating document dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating document %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("writing document %s: %w", key, err)
	}
	return nil
}

func (l *localStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := l.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentMissing, key)
	}
	if err != nil {
		return nil, fmt.Errorf("opening document %s: %w", key, err)
	}
	return f, nil
}

func (l *localStorage) DownloadURL(_ context.Context, key string, _ int64) (string, error) {
	token, err := l.signer.Sign(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/api/v1/documents/%s?token=%s",
		l.baseURL, url.PathEscape(key), url.QueryEscape(token)), nil
}
