package content

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSet = `[
  {"question": "She ___ to school every day.", "options": ["go", "goes", "going"], "answer": 1, "questionAr": "هي تذهب", "level": "A1"},
  {"question": "They ___ happy.", "options": ["is", "are"], "answer": 1}
]`

// writeTree creates files under a temp dir and returns the root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for p, body := range files {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(body), 0o644))
	}
	return root
}

// mapFetcher serves content from memory and counts fetches.
type mapFetcher struct {
	files map[string]string
	calls int
}

func (m *mapFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	m.calls++
	body, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(body), nil
}
