package source

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mattsolo1/grove-pagesort/pkg/frontmatter"
)

type indexSource struct {
	dbPath    string
	workspace string
}

// Index reads page titles from a notebook search index (the notes_meta
// table), ordered by path. An empty workspace reads every workspace.
// Archived notes are skipped.
func Index(dbPath, workspace string) Source {
	return &indexSource{dbPath: dbPath, workspace: workspace}
}

func (s *indexSource) Name() string {
	if s.workspace == "" {
		return s.dbPath
	}
	return s.dbPath + "#" + s.workspace
}

func (s *indexSource) Labels(ctx context.Context) ([]string, error) {
	db, err := sql.Open("sqlite3", "file:"+s.dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer db.Close()

	query := `
	SELECT path, title
	FROM notes_meta
	WHERE COALESCE(is_archived, 0) = 0
	`
	var args []any
	if s.workspace != "" {
		query += " AND workspace = ?"
		args = append(args, s.workspace)
	}
	query += " ORDER BY path"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var (
			path  string
			title sql.NullString
		)
		if err := rows.Scan(&path, &title); err != nil {
			return nil, fmt.Errorf("scan index row: %w", err)
		}
		if title.Valid && title.String != "" {
			labels = append(labels, title.String)
		} else {
			labels = append(labels, frontmatter.TitleFromFilename(filepath.Base(path)))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate index: %w", err)
	}
	return labels, nil
}
