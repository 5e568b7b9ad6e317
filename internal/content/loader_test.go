package content

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/flashlingo/internal/exam"
)

func TestLoader_Load(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	f := &mapFetcher{files: map[string]string{"english/exam_01.json": sampleSet}}
	l := NewLoader(DefaultCatalog(), f, logger)

	qs, err := l.Load(context.Background(), exam.SetID{Language: "english", Key: "exam_01"})
	require.NoError(t, err)
	assert.Len(t, qs, 2)
	assert.Contains(t, buf.String(), `"msg":"exam loaded"`)
	assert.Contains(t, buf.String(), `"set":"english/exam_01"`)
}

func TestLoader_UnknownSet(t *testing.T) {
	f := &mapFetcher{files: map[string]string{}}
	l := NewLoader(DefaultCatalog(), f, nil)

	qs, err := l.Load(context.Background(), exam.SetID{Language: "french", Key: "exam_01"})
	assert.Nil(t, qs)
	var nf *SetNotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, 0, f.calls, "unknown sets should not be fetched")
}

func TestLoader_FetchAndDecodeErrors(t *testing.T) {
	f := &mapFetcher{files: map[string]string{"english/exam_02.json": `[{"question":"q"}]`}}
	l := NewLoader(DefaultCatalog(), f, nil)
	ctx := context.Background()

	qs, err := l.Load(ctx, exam.SetID{Language: "english", Key: "exam_01"})
	assert.Nil(t, qs)
	assert.Error(t, err)

	qs, err = l.Load(ctx, exam.SetID{Language: "english", Key: "exam_02"})
	assert.Nil(t, qs)
	assert.Error(t, err)
}

func TestLoader_DirFetcher(t *testing.T) {
	root := writeTree(t, map[string]string{"english/exam_04.json": sampleSet})
	l := NewLoader(DefaultCatalog(), NewDirFetcher(root), nil)

	qs, err := l.Load(context.Background(), exam.SetID{Language: "english", Key: "exam_04"})
	require.NoError(t, err)
	assert.Len(t, qs, 2)
}

func TestDirFetcher_RejectsEscape(t *testing.T) {
	f := NewDirFetcher(t.TempDir())

	_, err := f.Fetch(context.Background(), "../secret.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes root")
}
