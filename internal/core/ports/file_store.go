package ports

// FileUpload is a multipart upload as received by a handler, before any disk
// write has happened.
type FileUpload struct {
	Name    string // original client-side filename
	Size    int64
	Content []byte
}

// PendingFile is an upload that has been written to the file store but not yet
// tied to a database row. Discard removes the file unless Commit was called
// first, so a deferred Discard makes every early return clean up after itself.
type PendingFile interface {
	// RelativePath is the stable serving path stored in the resume row,
	// e.g. /uploads/resumes/1756412345678-03f1a2b4.pdf.
	RelativePath() string
	Commit()
	Discard() error
}

// FileStore validates and persists uploaded resume binaries.
type FileStore interface {
	// Save validates type and size and writes the file under a generated
	// name. Validation failures return domain.ErrFileType /
	// domain.ErrFileTooLarge and leave nothing on disk.
	Save(upload FileUpload) (PendingFile, error)
}
