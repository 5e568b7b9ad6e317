package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abhisek/flashlingo/internal/exam"
)

// ManifestName is the catalog file looked up at the content root.
const ManifestName = "catalog.json"

// CatalogVersion is the manifest format this build writes and reads. Manifests
// with a different major version are rejected.
const CatalogVersion = "v1.2.0"

// SetEntry is one question set of a language.
type SetEntry struct {
	Key   string `json:"key"`
	Path  string `json:"path"`
	Title string `json:"title,omitempty"`
}

// Language groups the sets available for one study language.
type Language struct {
	Name string     `json:"name"`
	Sets []SetEntry `json:"sets"`
}

// Catalog lists every language and its question sets.
type Catalog struct {
	Version   string     `json:"version"`
	Languages []Language `json:"languages"`
}

// DefaultCatalog returns the built-in catalog: ten English exams and no exams
// yet for the other languages.
func DefaultCatalog() *Catalog {
	english := Language{Name: "english"}
	for i := 1; i <= 10; i++ {
		key := fmt.Sprintf("exam_%02d", i)
		english.Sets = append(english.Sets, SetEntry{
			Key:   key,
			Path:  "english/" + key + ".json",
			Title: fmt.Sprintf("Exam %d", i),
		})
	}
	return &Catalog{
		Version: CatalogVersion,
		Languages: []Language{
			english,
			{Name: "germany"},
			{Name: "russion"},
			{Name: "french"},
		},
	}
}

// ParseCatalog decodes and checks a catalog manifest.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	v := c.Version
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return nil, fmt.Errorf("catalog version %q is not a semantic version", c.Version)
	}
	if semver.Major(v) != semver.Major(CatalogVersion) {
		return nil, fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedCatalog, c.Version, semver.Major(CatalogVersion))
	}
	c.Version = v

	seen := make(map[string]bool)
	for _, lang := range c.Languages {
		if lang.Name == "" {
			return nil, errors.New("catalog language with empty name")
		}
		if seen[lang.Name] {
			return nil, fmt.Errorf("catalog language %q listed twice", lang.Name)
		}
		seen[lang.Name] = true

		keys := make(map[string]bool)
		for _, s := range lang.Sets {
			if s.Key == "" || s.Path == "" {
				return nil, fmt.Errorf("catalog language %q: set needs key and path", lang.Name)
			}
			if keys[s.Key] {
				return nil, fmt.Errorf("catalog language %q: set %q listed twice", lang.Name, s.Key)
			}
			keys[s.Key] = true
		}
	}
	return &c, nil
}

// LoadCatalog reads the manifest through f. A missing manifest falls back to
// DefaultCatalog.
func LoadCatalog(ctx context.Context, f Fetcher) (*Catalog, error) {
	data, err := f.Fetch(ctx, ManifestName)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return ParseCatalog(data)
}

// LanguageNames returns the languages in catalog order.
func (c *Catalog) LanguageNames() []string {
	names := make([]string, len(c.Languages))
	for i, l := range c.Languages {
		names[i] = l.Name
	}
	return names
}

// HasLanguage reports whether lang is in the catalog.
func (c *Catalog) HasLanguage(lang string) bool {
	for _, l := range c.Languages {
		if l.Name == lang {
			return true
		}
	}
	return false
}

// Sets returns the sets of lang, or nil if there are none.
func (c *Catalog) Sets(lang string) []SetEntry {
	for _, l := range c.Languages {
		if l.Name == lang {
			return l.Sets
		}
	}
	return nil
}

// Lookup resolves id to its entry.
func (c *Catalog) Lookup(id exam.SetID) (SetEntry, error) {
	for _, s := range c.Sets(id.Language) {
		if s.Key == id.Key {
			return s, nil
		}
	}
	return SetEntry{}, &SetNotFoundError{ID: id}
}

// Paths returns every set path in the catalog.
func (c *Catalog) Paths() []string {
	var out []string
	for _, l := range c.Languages {
		for _, s := range l.Sets {
			out = append(out, s.Path)
		}
	}
	return out
}
