package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const logFilePerm = 0o600

// LogRotator is an io.Writer that appends to a log file and rotates it to
// numbered backups (name.1, name.2, ...) once it exceeds maxSize bytes.
type LogRotator struct {
	mu          sync.Mutex
	path        string
	maxSize     int64
	maxBackups  int
	currentFile *os.File
	currentSize int64
}

// NewLogRotator opens (or creates) baseDir/fileName for appending.
func NewLogRotator(baseDir, fileName string, maxSizeMB, maxBackups int) (*LogRotator, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	r := &LogRotator{
		path:       filepath.Join(baseDir, fileName),
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) openCurrentFile() error {
	r.currentSize = 0
	if info, err := os.Stat(r.path); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

// Write implements io.Writer.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

// rotate shifts name.N-1 to name.N, drops the oldest backup and reopens.
// Must be called with r.mu held.
func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.currentFile = nil

	if r.maxBackups <= 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return r.openCurrentFile()
	}

	_ = os.Remove(r.backupPath(r.maxBackups))
	for i := r.maxBackups - 1; i >= 1; i-- {
		src := r.backupPath(i)
		if _, err := os.Stat(src); err == nil {
			if err := os.Rename(src, r.backupPath(i+1)); err != nil {
				return err
			}
		}
	}
	if err := os.Rename(r.path, r.backupPath(1)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return r.openCurrentFile()
}

func (r *LogRotator) backupPath(n int) string {
	return fmt.Sprintf("%s.%d", r.path, n)
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
