package source

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"trailing newline", "b\na\n", []string{"b", "a"}},
		{"no trailing newline", "b\na", []string{"b", "a"}},
		{"blank lines kept", "b\n\n---\n  \na\n", []string{"b", "", "---", "  ", "a"}},
		{"crlf", "Card\r\nPrice Card\r\n", []string{"Card", "Price Card"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines("test", strings.NewReader(tt.input)).Labels(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Lines("test", strings.NewReader("a\nb\n")).Labels(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMarkdown(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"a-card.md":       "---\ntitle: Card\n---\n\nbody\n",
		"b-price-card.md": "# Price Card\n",
		"c-alien.md":      "no heading here\n",
		"notes.txt":       "ignored",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0755))

	got, err := Markdown(dir).Labels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Card", "Price Card", "c alien"}, got)
}

func TestMarkdownBadFrontmatter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte("---\ntitle: [x\n---\n"), 0644))

	_, err := Markdown(dir).Labels(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.md")
}

func createIndex(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "search.db")
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
	CREATE TABLE notes_meta (
		path TEXT PRIMARY KEY,
		workspace TEXT,
		title TEXT,
		is_archived BOOLEAN
	);`)
	require.NoError(t, err)

	rows := []struct {
		path      string
		workspace string
		title     any
		archived  bool
	}{
		{"/nb/cards/3.md", "cards", "Price Card", false},
		{"/nb/cards/1.md", "cards", "Card", false},
		{"/nb/cards/2-old.md", "cards", "Old Card", true},
		{"/nb/cards/4-untitled-page.md", "cards", nil, false},
		{"/nb/other/1.md", "other", "Alien", false},
	}
	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO notes_meta (path, workspace, title, is_archived) VALUES (?, ?, ?, ?)`,
			r.path, r.workspace, r.title, r.archived)
		require.NoError(t, err)
	}
	return dbPath
}

func TestIndex(t *testing.T) {
	dbPath := createIndex(t)

	got, err := Index(dbPath, "").Labels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Card", "Price Card", "4 untitled page", "Alien"}, got)

	got, err = Index(dbPath, "other").Labels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alien"}, got)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "pages.txt")
	require.NoError(t, os.WriteFile(listPath, []byte("b\na\n"), 0644))
	dbPath := createIndex(t)

	t.Run("stdin", func(t *testing.T) {
		src, err := Open("-", Options{Stdin: strings.NewReader("x\n")})
		require.NoError(t, err)
		assert.Equal(t, "stdin", src.Name())

		got, err := src.Labels(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, got)
	})

	t.Run("file", func(t *testing.T) {
		src, err := Open(listPath, Options{})
		require.NoError(t, err)

		got, err := src.Labels(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, got)
	})

	t.Run("directory", func(t *testing.T) {
		src, err := Open(dir, Options{})
		require.NoError(t, err)
		assert.IsType(t, &markdownSource{}, src)
	})

	t.Run("index", func(t *testing.T) {
		src, err := Open(dbPath, Options{Workspace: "cards"})
		require.NoError(t, err)
		assert.Equal(t, dbPath+"#cards", src.Name())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "nope.txt"), Options{})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
