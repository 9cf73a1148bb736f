package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FilesystemSink stores failure reports as files under a single directory.
// Name uniqueness is the writer's job; the sink just creates and serves.
type FilesystemSink struct {
	dir string
}

func NewFilesystemSink(dir string) (*FilesystemSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}
	return &FilesystemSink{dir: dir}, nil
}

func (s *FilesystemSink) Create(name string) (io.WriteCloser, error) {
	return os.Create(s.Path(name))
}

// Path resolves a report name inside the sink directory. The name is
// reduced to its base so a crafted name cannot escape the directory.
func (s *FilesystemSink) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// Exists reports whether an artifact with this name is present.
func (s *FilesystemSink) Exists(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && !info.IsDir()
}
