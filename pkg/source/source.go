// Package source reads the page names that get sorted. Each Source returns
// labels in the host's current order.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source produces an ordered list of labels.
type Source interface {
	Labels(ctx context.Context) ([]string, error)
	// Name describes the source in logs and error messages.
	Name() string
}

// Options tune how Open resolves a source.
type Options struct {
	// Stdin is read for "-" or an empty location. Defaults to os.Stdin.
	Stdin io.Reader
	// Workspace restricts an index source to one workspace.
	Workspace string
}

// Open resolves location to a Source: "-" or "" reads stdin, a directory reads
// markdown pages, a .db or .sqlite file reads a notebook search index and
// any other path is read as one label per line.
func Open(location string, opts Options) (Source, error) {
	if location == "" || location == "-" {
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		return Lines("stdin", in), nil
	}

	info, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("open source %s: %w", location, err)
	}
	if info.IsDir() {
		return Markdown(location), nil
	}

	switch strings.ToLower(filepath.Ext(location)) {
	case ".db", ".sqlite", ".sqlite3":
		return Index(location, opts.Workspace), nil
	default:
		return File(location), nil
	}
}

type lineSource struct {
	name string
	r    io.Reader
}

// Lines reads one label per line from r. Blank lines are kept as empty
// labels; a trailing newline does not add one.
func Lines(name string, r io.Reader) Source {
	return &lineSource{name: name, r: r}
}

func (s *lineSource) Name() string { return s.name }

func (s *lineSource) Labels(ctx context.Context) ([]string, error) {
	return readLines(ctx, s.r)
}

type fileSource struct {
	path string
}

// File reads one label per line from the file at path.
func File(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string { return s.path }

func (s *fileSource) Labels(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	labels, err := readLines(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return labels, nil
}

func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	labels := []string{}
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		labels = append(labels, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}
