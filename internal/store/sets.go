package store

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"io/fs"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	tableSets     = "content_files"
	columnPath    = "path"
	columnData    = "data"
	columnSize    = "size"
	columnUpdated = "updated_at"
)

// FileInfo describes one stored content file.
type FileInfo struct {
	Path      string
	Size      int
	UpdatedAt time.Time
}

// SetRepo stores raw content files keyed by their slash-separated path.
type SetRepo interface {
	// Put inserts or replaces the file at path.
	Put(ctx context.Context, path string, data []byte) error

	// Get returns the file at path. A missing path matches fs.ErrNotExist.
	Get(ctx context.Context, path string) ([]byte, error)

	// List returns every stored file ordered by path.
	List(ctx context.Context) ([]FileInfo, error)

	// Delete removes the file at path. Deleting a missing path is not an error.
	Delete(ctx context.Context, path string) error
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// schema is applied on every Open.
const schema = `CREATE TABLE IF NOT EXISTS ` + tableSets + ` (
	` + columnPath + ` TEXT NOT NULL PRIMARY KEY,
	` + columnData + ` BLOB NOT NULL,
	` + columnSize + ` INTEGER NOT NULL,
	` + columnUpdated + ` INTEGER NOT NULL
)`

func migrate(ctx context.Context, drv *entsql.Driver) error {
	var res stdsql.Result
	return drv.Exec(ctx, schema, []any{}, &res)
}

type setRepo struct {
	drv *entsql.Driver
}

func (r *setRepo) Put(ctx context.Context, path string, data []byte) error {
	query, args := builder().Insert(tableSets).
		Columns(columnPath, columnData, columnSize, columnUpdated).
		Values(path, data, len(data), time.Now().Unix()).
		OnConflict(
			entsql.ConflictColumns(columnPath),
			entsql.ResolveWithNewValues(),
		).
		Query()

	var res stdsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("put %s: %w", path, err)
	}
	return nil
}

func (r *setRepo) Get(ctx context.Context, path string) ([]byte, error) {
	t := builder().Table(tableSets)
	query, args := builder().Select(t.C(columnData)).
		From(t).
		Where(entsql.EQ(t.C(columnPath), path)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get %s: %w", path, err)
		}
		return nil, fmt.Errorf("get %s: %w", path, fs.ErrNotExist)
	}
	var data []byte
	if err := rows.Scan(&data); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return data, nil
}

func (r *setRepo) List(ctx context.Context) ([]FileInfo, error) {
	t := builder().Table(tableSets)
	query, args := builder().Select(t.C(columnPath), t.C(columnSize), t.C(columnUpdated)).
		From(t).
		OrderBy(t.C(columnPath)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var out []FileInfo
	for rows.Next() {
		var (
			fi      FileInfo
			updated int64
		)
		if err := rows.Scan(&fi.Path, &fi.Size, &updated); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		fi.UpdatedAt = time.Unix(updated, 0).UTC()
		out = append(out, fi)
	}
	return out, rows.Err()
}

func (r *setRepo) Delete(ctx context.Context, path string) error {
	query, args := builder().Delete(tableSets).
		Where(entsql.EQ(columnPath, path)).
		Query()

	var res stdsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
