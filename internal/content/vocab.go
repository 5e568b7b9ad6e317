package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// VocabFileCount is the number of vocab files per language.
const VocabFileCount = 20

// VocabRecord holds the fields the duplicate check keys on.
type VocabRecord struct {
	Word string `json:"word"`
	POS  string `json:"pos"`
}

// Key is the case-insensitive identity of a vocab entry: "word|pos".
func (r VocabRecord) Key() string {
	return strings.ToLower(r.Word) + "|" + strings.ToLower(r.POS)
}

// Duplicate is a repeated vocab entry and where it was first seen.
type Duplicate struct {
	Key        string
	Path       string
	Index      int
	FirstPath  string
	FirstIndex int
}

// SkippedFile is a file the check could not read or decode.
type SkippedFile struct {
	Path string
	Err  error
}

// DuplicateReport is the outcome of FindDuplicates.
type DuplicateReport struct {
	Total      int
	Duplicates []Duplicate
	Skipped    []SkippedFile
}

// VocabPaths returns the vocab file paths of lang, vocab_01 to vocab_20.
func VocabPaths(lang string) []string {
	paths := make([]string, VocabFileCount)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s/vocab_%02d.json", lang, i+1)
	}
	return paths
}

// FindDuplicates scans the vocab files at paths, in order, and reports every
// entry whose key was already seen. Unreadable files are skipped and listed.
func FindDuplicates(ctx context.Context, f Fetcher, paths []string) (*DuplicateReport, error) {
	type seenAt struct {
		path  string
		index int
	}
	seen := make(map[string]seenAt)
	report := &DuplicateReport{}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := f.Fetch(ctx, p)
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedFile{Path: p, Err: err})
			continue
		}
		var records []VocabRecord
		if err := json.Unmarshal(data, &records); err != nil {
			report.Skipped = append(report.Skipped, SkippedFile{Path: p, Err: err})
			continue
		}

		for i, r := range records {
			report.Total++
			key := r.Key()
			if first, ok := seen[key]; ok {
				report.Duplicates = append(report.Duplicates, Duplicate{
					Key:        key,
					Path:       p,
					Index:      i,
					FirstPath:  first.path,
					FirstIndex: first.index,
				})
				continue
			}
			seen[key] = seenAt{path: p, index: i}
		}
	}
	return report, nil
}
