package services

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognitiveflux/core/internal/domain/entities"
)

// markdownFrontMatter is the YAML header carried by exported articles.
type markdownFrontMatter struct {
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Date     string   `yaml:"date"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	Image    string   `yaml:"image"`
}

// renderMarkdownArticle assembles the export document: front matter, a
// blank line, the excerpt as a block quote when present, then the raw
// markdown content.
func renderMarkdownArticle(a *entities.Article) []byte {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	fmt.Fprintf(&buf, "title: %s\n", a.Title)
	fmt.Fprintf(&buf, "author: %s\n", a.Author)
	fmt.Fprintf(&buf, "date: %s\n", a.Date)
	fmt.Fprintf(&buf, "category: %s\n", a.Category)
	fmt.Fprintf(&buf, "tags: [%s]\n", strings.Join(a.Tags, ", "))
	fmt.Fprintf(&buf, "image: %s\n", a.ImageURL)
	buf.WriteString("---\n\n")

	if a.Excerpt != "" {
		fmt.Fprintf(&buf, "> %s\n\n", a.Excerpt)
	}
	buf.WriteString(a.Content)

	return buf.Bytes()
}

// parseMarkdownArticle is the inverse of renderMarkdownArticle: it splits
// the front matter off, decodes it as YAML, and recovers the excerpt from
// a leading block quote when one is present.
func parseMarkdownArticle(data []byte) (entities.ArticleFields, error) {
	parts := bytes.SplitN(data, []byte("---"), 3)
	if len(parts) < 3 {
		return entities.ArticleFields{}, fmt.Errorf("%w: missing front matter", entities.ErrMalformedImport)
	}

	var fm markdownFrontMatter
	if err := yaml.Unmarshal(parts[1], &fm); err != nil {
		return entities.ArticleFields{}, fmt.Errorf("%w: %v", entities.ErrMalformedImport, err)
	}

	fields := entities.ArticleFields{
		Title:    fm.Title,
		Author:   fm.Author,
		Date:     fm.Date,
		Category: fm.Category,
		Tags:     fm.Tags,
		ImageURL: fm.Image,
	}

	body := strings.TrimSpace(string(parts[2]))
	if strings.HasPrefix(body, "> ") {
		quote, rest, found := strings.Cut(body, "\n")
		fields.Excerpt = strings.TrimPrefix(quote, "> ")
		if found {
			body = strings.TrimLeft(rest, "\n")
		} else {
			body = ""
		}
	}
	fields.Content = body

	return fields, nil
}
