// Package filestore persists uploaded resume binaries under a local uploads
// directory. Files are written before the database row exists, so every write
// hands back a pending handle that deletes the file unless it is committed.
package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fairlink/careerfair-api/internal/core/domain"
	"github.com/fairlink/careerfair-api/internal/core/ports"
)

// MaxFileSize caps resume uploads at 5 MiB.
const MaxFileSize = 5 << 20

const resumesSubdir = "resumes"

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

type Store struct {
	baseDir string
	dir     string
}

// New creates the uploads directory tree if needed.
func New(baseDir string) (*Store, error) {
	dir := filepath.Join(baseDir, resumesSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create %s: %w", dir, err)
	}
	return &Store{baseDir: baseDir, dir: dir}, nil
}

// BaseDir is the directory served under the /uploads route.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Save validates the upload and writes it under a generated name. Generated
// names combine the current time with a random suffix; collisions are
// probabilistically impossible but not locked against.
func (s *Store) Save(upload ports.FileUpload) (ports.PendingFile, error) {
	ext := strings.ToLower(filepath.Ext(upload.Name))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, domain.ErrFileType
	}
	if upload.Size > MaxFileSize || int64(len(upload.Content)) > MaxFileSize {
		return nil, domain.ErrFileTooLarge
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, upload.Content, 0o644); err != nil {
		return nil, fmt.Errorf("filestore: write %s: %w", name, err)
	}

	return &pendingFile{path: path, rel: "/uploads/" + resumesSubdir + "/" + name}, nil
}

type pendingFile struct {
	path      string
	rel       string
	committed bool
}

func (p *pendingFile) RelativePath() string {
	return p.rel
}

// Commit keeps the file; after Commit, Discard does nothing.
func (p *pendingFile) Commit() {
	p.committed = true
}

// Discard removes the file unless it was committed. Removing an
// already-removed file is not an error.
func (p *pendingFile) Discard() error {
	if p.committed {
		return nil
	}
	if err := os.Remove(p.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
