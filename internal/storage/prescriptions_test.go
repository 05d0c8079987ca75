package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("prescription", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["prescription"][0]
}

func TestAllowedExtensions(t *testing.T) {
	store, err := NewPrescriptionStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewPrescriptionStore: %v", err)
	}

	for _, name := range []string{"rx.jpg", "rx.JPEG", "rx.png", "rx.PDF"} {
		if !store.Allowed(name) {
			t.Errorf("Allowed(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"rx.gif", "rx.exe", "rx", "rx.pdf.txt"} {
		if store.Allowed(name) {
			t.Errorf("Allowed(%q) = true, want false", name)
		}
	}
}

func TestSaveWritesFileAndReturnsPublicPath(t *testing.T) {
	root := t.TempDir()
	store, err := NewPrescriptionStore(root)
	if err != nil {
		t.Fatalf("NewPrescriptionStore: %v", err)
	}

	publicPath, err := store.Save(newFileHeader(t, "scan.pdf", "prescription body"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(publicPath, PublicPrefix) {
		t.Fatalf("public path %q missing %q prefix", publicPath, PublicPrefix)
	}
	if !strings.HasSuffix(publicPath, ".pdf") {
		t.Fatalf("public path %q should keep the extension", publicPath)
	}

	onDisk := filepath.Join(store.Dir(), filepath.Base(publicPath))
	content, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(content) != "prescription body" {
		t.Fatalf("stored content = %q", content)
	}
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store, err := NewPrescriptionStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewPrescriptionStore: %v", err)
	}

	if _, err := store.Save(newFileHeader(t, "malware.exe", "nope")); err == nil {
		t.Fatal("expected disallowed extension to be rejected")
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("rejected upload left %d files on disk", len(entries))
	}
}

func TestRemoveDeletesStoredFile(t *testing.T) {
	store, err := NewPrescriptionStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewPrescriptionStore: %v", err)
	}

	publicPath, err := store.Save(newFileHeader(t, "scan.jpg", "img"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Remove(publicPath); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), filepath.Base(publicPath))); !os.IsNotExist(err) {
		t.Fatal("file should be gone after Remove")
	}
}

func TestRemoveMissingFileIsNotAnError(t *testing.T) {
	store, err := NewPrescriptionStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewPrescriptionStore: %v", err)
	}

	if err := store.Remove(PublicPrefix + "prescription-123.pdf"); err != nil {
		t.Fatalf("Remove of a missing file should succeed, got %v", err)
	}
}
