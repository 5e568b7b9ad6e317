package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabPaths(t *testing.T) {
	paths := VocabPaths("english")
	require.Len(t, paths, VocabFileCount)
	assert.Equal(t, "english/vocab_01.json", paths[0])
	assert.Equal(t, "english/vocab_20.json", paths[19])
}

func TestFindDuplicates(t *testing.T) {
	f := &mapFetcher{files: map[string]string{
		"english/vocab_01.json": `[{"word":"Run","pos":"verb"},{"word":"apple","pos":"noun"}]`,
		"english/vocab_02.json": `[{"word":"run","pos":"VERB"},{"word":"run","pos":"noun"}]`,
		"english/vocab_03.json": `not json`,
	}}

	report, err := FindDuplicates(context.Background(), f, VocabPaths("english")[:4])
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	require.Len(t, report.Duplicates, 1)
	d := report.Duplicates[0]
	assert.Equal(t, "run|verb", d.Key)
	assert.Equal(t, "english/vocab_02.json", d.Path)
	assert.Equal(t, 0, d.Index)
	assert.Equal(t, "english/vocab_01.json", d.FirstPath)
	assert.Equal(t, 0, d.FirstIndex)

	require.Len(t, report.Skipped, 2)
	assert.Equal(t, "english/vocab_03.json", report.Skipped[0].Path)
	assert.Equal(t, "english/vocab_04.json", report.Skipped[1].Path)
}

func TestFindDuplicates_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindDuplicates(ctx, &mapFetcher{}, []string{"a.json"})
	assert.ErrorIs(t, err, context.Canceled)
}
