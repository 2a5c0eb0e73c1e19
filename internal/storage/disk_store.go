// Package storage persists uploaded proof documents. The application keeps
// all state under its data directory, so the default store writes blobs to
// local disk and resolves URLs under the public /uploads/ route.
package storage

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// BlobStore saves an uploaded document for a user and returns the URL it can
// be retrieved from afterwards.
type BlobStore interface {
	Save(userID uint, filename string, content io.Reader) (string, error)
}

type DiskStore struct {
	rootDir string
	baseURL string
}

// NewDiskStore writes blobs under rootDir and resolves their URLs against
// baseURL (e.g. "/uploads"). rootDir is created on first use.
func NewDiskStore(rootDir string, baseURL string) *DiskStore {
	return &DiskStore{
		rootDir: rootDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Save stores the document as proofs/<userID>/<ulid><ext>. The ULID key makes
// every upload a fresh object, so a re-upload never clobbers the proof an
// earlier profile write may still reference.
func (store *DiskStore) Save(userID uint, filename string, content io.Reader) (string, error) {
	key, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", fmt.Errorf("generate blob key: %w", err)
	}

	objectName := key.String() + sanitizeExtension(filename)
	relativePath := path.Join("proofs", fmt.Sprintf("%d", userID), objectName)

	fullPath := filepath.Join(store.rootDir, filepath.FromSlash(relativePath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create blob directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create blob file: %w", err)
	}
	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close blob file: %w", err)
	}

	return store.baseURL + "/" + relativePath, nil
}

func sanitizeExtension(filename string) string {
	ext := strings.ToLower(strings.TrimSpace(path.Ext(path.Base(filename))))
	if ext == "" || ext == "." || len(ext) > 10 {
		return ""
	}
	for _, char := range ext[1:] {
		if (char < 'a' || char > 'z') && (char < '0' || char > '9') {
			return ""
		}
	}
	return ext
}
