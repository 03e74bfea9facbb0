package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/andybalholm/brotli"
)

const (
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxLogFiles = 3                // Keep 3 backup files
	logFileName = "moodscape.log"
)

var (
	logMutex  sync.Mutex
	logWriter *rotatingWriter
)

// rotatingWriter is the io.Writer behind the stdlib logger. It appends to
// moodscape.log until the size cap is reached, then rotates: the current log
// is brotli-compressed to moodscape.log.1.br and older backups shift up,
// dropping the oldest beyond maxLogFiles.
type rotatingWriter struct {
	mu      sync.Mutex
	dir     string
	file    *os.File
	size    int64
	maxSize int64
}

// InitLogger routes the stdlib logger into a rotating file in the config
// directory, keeping stderr output as well. This should be called once
// during application startup, before any other package logs.
func InitLogger(configDir string) error {
	w := &rotatingWriter{dir: configDir, maxSize: maxLogSize}
	if err := w.open(); err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	logMutex.Lock()
	logWriter = w
	logMutex.Unlock()
	log.SetOutput(io.MultiWriter(os.Stderr, w))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	log.Printf("=== Moodscape %s logging to %s (cap %d MB, %d backups) ===",
		Version, filepath.Join(configDir, logFileName), maxLogSize/(1024*1024), maxLogFiles)
	return nil
}

// CloseLogger points the stdlib logger back at stderr and closes the file.
func CloseLogger() {
	logMutex.Lock()
	w := logWriter
	logWriter = nil
	logMutex.Unlock()

	if w == nil {
		return
	}
	log.SetOutput(os.Stderr)
	w.mu.Lock()
	w.close()
	w.mu.Unlock()
}

// LogPath returns the location of the active log file, for the log viewer.
func LogPath() (string, error) {
	configDir, err := VerifyConfigDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, logFileName), nil
}

func (w *rotatingWriter) open() error {
	logPath := filepath.Join(w.dir, logFileName)

	// Pick up the size of an existing log so the cap holds across restarts.
	if info, err := os.Stat(logPath); err == nil {
		w.size = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	w.file = file
	return nil
}

func (w *rotatingWriter) close() {
	if w.file != nil {
		w.file.Close()
		w.file = nil
	}
}

func (w *rotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return len(p), nil // Logger already closed
	}

	if w.size+int64(len(p)) >= w.maxSize {
		if err := w.rotate(); err != nil {
			// Rotation failures must not take logging down with them;
			// keep appending to the oversized file.
			fmt.Fprintf(os.Stderr, "failed to rotate logs: %v\n", err)
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// rotate compresses the current log to a .1.br backup and shifts the
// existing backups up by one, discarding the oldest.
func (w *rotatingWriter) rotate() error {
	basePath := filepath.Join(w.dir, logFileName)

	w.close()

	// Remove oldest backup (moodscape.log.3.br)
	oldestBackup := fmt.Sprintf("%s.%d.br", basePath, maxLogFiles)
	os.Remove(oldestBackup) // Ignore error if file doesn't exist

	// Rotate existing backups
	for i := maxLogFiles - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d.br", basePath, i)
		newPath := fmt.Sprintf("%s.%d.br", basePath, i+1)
		os.Rename(oldPath, newPath) // Ignore error if source doesn't exist
	}

	// Compress current log to .1.br, then start fresh
	if err := compressFile(basePath, basePath+".1.br"); err != nil {
		// Keep logging into the oversized file rather than going dark.
		w.open()
		return err
	}
	if err := os.Remove(basePath); err != nil && !os.IsNotExist(err) {
		w.open()
		return err
	}

	w.size = 0
	return w.open()
}

func compressFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	bw := brotli.NewWriterLevel(out, brotli.DefaultCompression)
	if _, err := io.Copy(bw, in); err != nil {
		return err
	}
	return bw.Close()
}
