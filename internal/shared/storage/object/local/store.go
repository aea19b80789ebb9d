package local

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"surplus-backend/internal/shared/storage/object"
	"surplus-backend/internal/shared/util"
)

// ErrInvalidKey is returned for keys that escape the base directory.
var ErrInvalidKey = errors.New("invalid storage key")

// Store implements ObjectStore using the local filesystem.
type Store struct {
	baseDir string
}

// New creates a new local object store rooted at baseDir.
func New(baseDir string) object.ObjectStore {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under the namespace with a random prefix.
func (s *Store) Save(ctx context.Context, namespace string, fileName string, r io.Reader) (string, int64, string, error) {
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", 0, "", fmt.Errorf("sanitize file name: %w", err)
	}
	sanitizedNS, err := util.SanitizeFileName(namespace)
	if err != nil {
		return "", 0, "", fmt.Errorf("sanitize namespace: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", 0, "", err
	}

	finalName := fmt.Sprintf("%s_%s", randomID(), sanitizedName)

	dirPath := filepath.Join(s.baseDir, sanitizedNS)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", 0, "", fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(dirPath, finalName)
	size, mimeType, err := writeObject(fullPath, r)
	if err != nil {
		// The namespace directory only goes when nothing else was stored in it.
		_ = os.Remove(fullPath)
		_ = os.Remove(dirPath)
		return "", 0, "", err
	}

	relPath := filepath.Join(sanitizedNS, finalName)
	return relPath, size, mimeType, nil
}

func writeObject(fullPath string, r io.Reader) (int64, string, error) {
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, "", fmt.Errorf("open file: %w", err)
	}

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		f.Close()
		return 0, "", fmt.Errorf("read sniff: %w", readErr)
	}
	mimeType := http.DetectContentType(sniff[:n])

	if _, err := f.Write(sniff[:n]); err != nil {
		f.Close()
		return 0, "", fmt.Errorf("write sniff: %w", err)
	}
	written, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		return 0, "", fmt.Errorf("write body: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, "", fmt.Errorf("close file: %w", err)
	}
	return int64(n) + written, mimeType, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath, err := s.Path(storageKey)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// Path maps a storage key to its location under the base directory.
func (s *Store) Path(storageKey string) (string, error) {
	clean := filepath.Clean(storageKey)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.baseDir, clean), nil
}

// Remove deletes the namespace directory that holds the key. Missing
// objects are not an error.
func (s *Store) Remove(ctx context.Context, storageKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fullPath, err := s.Path(storageKey)
	if err != nil {
		return err
	}
	dir := filepath.Dir(fullPath)
	if filepath.Clean(dir) == filepath.Clean(s.baseDir) {
		err = os.Remove(fullPath)
	} else {
		err = os.RemoveAll(dir)
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
