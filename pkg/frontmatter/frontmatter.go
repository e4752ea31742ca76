package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	frontmatterPattern = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---\r?\n?(.*)`)
	headingPattern     = regexp.MustCompile(`(?m)^#[ \t]+(.+?)[ \t#]*\r?$`)
)

// Frontmatter is the metadata block at the top of a page. Only the fields
// that identify a page are decoded; everything else is ignored.
type Frontmatter struct {
	Title   string   `yaml:"title"`
	Aliases []string `yaml:"aliases,flow"`
}

// Parse extracts frontmatter from content and returns the parsed data and body
func Parse(content string) (*Frontmatter, string, error) {
	matches := frontmatterPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		// No frontmatter found
		return nil, content, nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(matches[1]), &fm); err != nil {
		return nil, content, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	// Ensure arrays are never nil
	if fm.Aliases == nil {
		fm.Aliases = []string{}
	}

	return &fm, matches[2], nil
}

// Title returns the page name for content: the frontmatter title, else the
// first non-empty alias, else the first level-one heading, else fallback.
// The title is returned verbatim, so surrounding whitespace that matters to
// sorting is kept.
func Title(content, fallback string) (string, error) {
	fm, body, err := Parse(content)
	if err != nil {
		return "", err
	}
	if fm != nil {
		if fm.Title != "" {
			return fm.Title, nil
		}
		for _, alias := range fm.Aliases {
			if alias != "" {
				return alias, nil
			}
		}
	}
	if m := headingPattern.FindStringSubmatch(body); m != nil {
		return m[1], nil
	}
	return fallback, nil
}

// TitleFromFilename turns "price-card.md" into "price card".
func TitleFromFilename(name string) string {
	name = strings.TrimSuffix(name, ".md")
	return strings.NewReplacer("-", " ", "_", " ").Replace(name)
}
