package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Fetcher returns the raw bytes stored under a slash-separated content path,
// e.g. "english/exam_01.json". A missing path yields an error matching
// fs.ErrNotExist.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// DirFetcher reads content from a local directory tree.
type DirFetcher struct {
	Root string
}

// NewDirFetcher returns a fetcher rooted at root.
func NewDirFetcher(root string) *DirFetcher {
	return &DirFetcher{Root: root}
}

// Fetch reads root/path. Paths that would escape the root are rejected.
func (d *DirFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel := filepath.FromSlash(path)
	if !filepath.IsLocal(rel) {
		return nil, fmt.Errorf("content path %q escapes root", path)
	}
	return os.ReadFile(filepath.Join(d.Root, rel))
}

func (d *DirFetcher) String() string { return "dir:" + d.Root }
