package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// FileStore persists multipart uploads under a static root directory
// served read-only at /uploads/. It validates nothing about the file
// itself; callers store the returned filename as a reference.
type FileStore struct {
	Root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

// Save writes one named file part to disk and returns the generated
// filename: a fixed prefix, a time-based token and the original
// extension. Returns http.ErrMissingFile when the part is absent.
func (fs *FileStore) Save(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := os.MkdirAll(fs.Root, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := fmt.Sprintf("file_%d%s", time.Now().UnixNano(), filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(fs.Root, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}

	return name, nil
}
