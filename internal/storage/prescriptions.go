package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PublicPrefix is the URL prefix under which stored prescriptions are served.
const PublicPrefix = "/uploads/prescriptions/"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// PrescriptionStore persists uploaded prescription files on disk.
type PrescriptionStore struct {
	dir string
}

// NewPrescriptionStore creates the upload directory if needed and returns a
// store rooted there.
func NewPrescriptionStore(uploadRoot string) (*PrescriptionStore, error) {
	dir := filepath.Join(uploadRoot, "prescriptions")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &PrescriptionStore{dir: dir}, nil
}

// Dir returns the directory prescriptions are stored in.
func (s *PrescriptionStore) Dir() string {
	return s.dir
}

// Allowed reports whether the file name carries an accepted extension.
func (s *PrescriptionStore) Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Save validates and writes the uploaded file, returning its public path.
// Nothing is left on disk when validation or the write fails.
func (s *PrescriptionStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("invalid file type %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("prescription-%d%s", time.Now().UnixMilli(), ext)
	target := filepath.Join(s.dir, name)

	dst, err := os.Create(target)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(target)
		return "", err
	}

	if err := dst.Close(); err != nil {
		os.Remove(target)
		return "", err
	}

	return PublicPrefix + name, nil
}

// Remove deletes the file behind a public path. A missing file is not an
// error; the record it belonged to is what matters.
func (s *PrescriptionStore) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return nil
	}

	target := filepath.Join(s.dir, filepath.Base(publicPath))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
