package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
)

func TestRotatingWriterAppends(t *testing.T) {
	dir := t.TempDir()
	w := &rotatingWriter{dir: dir, maxSize: maxLogSize}
	if err := w.open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	defer w.close()

	if _, err := w.Write([]byte("first line\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := w.Write([]byte("second line\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "first line\nsecond line\n" {
		t.Fatalf("log content = %q", data)
	}
}

func TestRotatingWriterRotatesAndCompresses(t *testing.T) {
	dir := t.TempDir()
	// Tiny cap so a couple of writes force a rotation.
	w := &rotatingWriter{dir: dir, maxSize: 64}
	if err := w.open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	defer w.close()

	oldLine := strings.Repeat("a", 60) + "\n"
	if _, err := w.Write([]byte(oldLine)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// This write crosses the cap and triggers rotation first.
	if _, err := w.Write([]byte("fresh\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// The fresh log holds only the post-rotation line.
	current, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(current) != "fresh\n" {
		t.Fatalf("current log = %q, want %q", current, "fresh\n")
	}

	// The backup decompresses to the pre-rotation content.
	backup, err := os.Open(filepath.Join(dir, logFileName+".1.br"))
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	defer backup.Close()

	var restored bytes.Buffer
	if _, err := io.Copy(&restored, brotli.NewReader(backup)); err != nil {
		t.Fatalf("decompress backup: %v", err)
	}
	if restored.String() != oldLine {
		t.Fatalf("backup content = %q, want %q", restored.String(), oldLine)
	}
}

func TestRotatingWriterDropsOldestBackup(t *testing.T) {
	dir := t.TempDir()
	w := &rotatingWriter{dir: dir, maxSize: 16}
	if err := w.open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	defer w.close()

	// Force more rotations than maxLogFiles.
	for i := 0; i < maxLogFiles+2; i++ {
		if _, err := w.Write([]byte(strings.Repeat("x", 20) + "\n")); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	backups := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".br") {
			backups++
		}
	}
	if backups > maxLogFiles {
		t.Fatalf("%d backups on disk, cap is %d", backups, maxLogFiles)
	}
}
