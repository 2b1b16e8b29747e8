package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apperrors "big-brain-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const keyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// LocalBlobStore keeps uploaded files under a root directory and serves them under baseURL
type LocalBlobStore struct {
	root     string
	baseURL  string
	maxBytes int64
	now      func() time.Time
}

// NewLocalBlobStore creates the root directory if needed. baseURL is the public prefix files are served under.
func NewLocalBlobStore(root, baseURL string, maxBytes int64) (*LocalBlobStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &LocalBlobStore{
		root:     abs,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
		now:      time.Now,
	}, nil
}

// Root returns the absolute directory files are written to
func (s *LocalBlobStore) Root() string {
	return s.root
}

// Upload stores an image read from r and returns its public URL and storage key.
// Input larger than the configured limit or not sniffed as an image is rejected.
func (s *LocalBlobStore) Upload(ctx context.Context, filename string, r io.Reader) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	limited := io.LimitReader(r, s.maxBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return "", "", fmt.Errorf("storage: read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", "", apperrors.ErrFileTooLarge
	}
	if _, err := SniffImage(data); err != nil {
		return "", "", err
	}

	id, err := gonanoid.Generate(keyAlphabet, 12)
	if err != nil {
		return "", "", fmt.Errorf("storage: generate key: %w", err)
	}
	now := s.now().UTC()
	key := path.Join(now.Format("2006"), now.Format("01"), id+"-"+SafeName(filename))

	abs, err := s.safePath(key)
	if err != nil {
		return "", "", err
	}
	if err := writeAtomic(abs, data); err != nil {
		return "", "", err
	}
	return s.baseURL + "/files/" + key, key, nil
}

// Delete removes the file stored under key. Missing files are not an error.
func (s *LocalBlobStore) Delete(ctx context.Context, key string) error {
	abs, err := s.safePath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// safePath resolves key under root and rejects anything that escapes it
func (s *LocalBlobStore) safePath(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: invalid key: %q", key)
	}
	abs := filepath.Join(s.root, cleaned)
	if !strings.HasPrefix(abs, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: key escapes root: %q", key)
	}
	return abs, nil
}

// writeAtomic writes data to a temp file next to dst and renames it into place
func writeAtomic(dst string, data []byte) error {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".upload-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// SafeName reduces a client supplied filename to a plain, URL safe base name
func SafeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "upload"
	}
	if len(base) > 80 {
		base = base[len(base)-80:]
	}
	return base
}

// SniffImage returns the MIME type detected from the content of data, or
// ErrUnsupportedFileType when it is not an image.
func SniffImage(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", apperrors.ErrUnsupportedFileType
	}
	return mt.String(), nil
}
