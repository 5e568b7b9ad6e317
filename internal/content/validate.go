package content

import (
	"context"
	"errors"
	"io/fs"
)

// SetProblem is a catalog entry whose file failed to load or decode.
type SetProblem struct {
	Language string
	Key      string
	Path     string
	Err      error
}

// SetReport is the outcome of CheckSets.
type SetReport struct {
	Checked   int
	Questions int
	Missing   []SetProblem
	Invalid   []SetProblem
}

// CheckSets fetches and decodes every set the catalog lists.
func CheckSets(ctx context.Context, f Fetcher, c *Catalog) (*SetReport, error) {
	report := &SetReport{}
	for _, lang := range c.Languages {
		for _, s := range lang.Sets {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report.Checked++

			problem := SetProblem{Language: lang.Name, Key: s.Key, Path: s.Path}
			data, err := f.Fetch(ctx, s.Path)
			if err != nil {
				problem.Err = err
				if errors.Is(err, fs.ErrNotExist) {
					report.Missing = append(report.Missing, problem)
				} else {
					report.Invalid = append(report.Invalid, problem)
				}
				continue
			}
			qs, err := DecodeSet(data)
			if err != nil {
				problem.Err = err
				report.Invalid = append(report.Invalid, problem)
				continue
			}
			report.Questions += len(qs)
		}
	}
	return report, nil
}

// OK reports whether no set was invalid. Missing sets are tolerated because a
// catalog may list sets that are not published yet.
func (r *SetReport) OK() bool {
	return len(r.Invalid) == 0
}
