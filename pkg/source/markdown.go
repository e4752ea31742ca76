package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattsolo1/grove-pagesort/pkg/frontmatter"
)

type markdownSource struct {
	dir string
}

// Markdown reads the title of every .md file directly inside dir, in file
// name order.
func Markdown(dir string) Source {
	return &markdownSource{dir: dir}
}

func (s *markdownSource) Name() string { return s.dir }

func (s *markdownSource) Labels(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", s.dir, err)
	}

	labels := []string{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", path, err)
		}

		title, err := frontmatter.Title(string(content), frontmatter.TitleFromFilename(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", path, err)
		}
		labels = append(labels, title)
	}
	return labels, nil
}
