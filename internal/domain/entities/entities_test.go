package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation collapses", "Mindful Investing: AI & You!", "mindful-investing-ai-you"},
		{"leading and trailing junk trimmed", "  --Hello--  ", "hello"},
		{"already a slug", "hello-world", "hello-world"},
		{"digits survive", "Top 10 Tips", "top-10-tips"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestNewArticleID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	assert.Equal(t, "hello-world-1700000000000", NewArticleID("Hello World", now))
	assert.Equal(t, "untitled-1700000000000", NewArticleID("", now))
	assert.Equal(t, "untitled-1700000000000", NewArticleID("???", now))
}

func TestNewArticle(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	article := NewArticle(ArticleFields{
		Title:    "Hello World",
		Author:   "Jane",
		Date:     "2024-05-01",
		Category: "Tech",
		Excerpt:  "An excerpt",
		Content:  "Body",
	}, now)

	assert.Equal(t, "hello-world-1700000000000", article.ID)
	assert.Equal(t, "https://picsum.photos/seed/1700000000000/800/400", article.ImageURL)
	assert.NotNil(t, article.Tags)
	assert.Empty(t, article.Tags)
}

func TestApplyKeepsProvidedImage(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	article := &Article{ID: "x"}

	article.Apply(ArticleFields{Title: "T", ImageURL: "https://example.com/pic.png"}, now)

	assert.Equal(t, "https://example.com/pic.png", article.ImageURL)
	assert.Equal(t, "x", article.ID)
}

func TestMatchesSearch(t *testing.T) {
	article := &Article{
		Title:   "Mindful Investing",
		Author:  "Sarah Chen",
		Excerpt: "How AI reshapes portfolios",
		Tags:    []string{"Finance", "AI"},
	}

	assert.True(t, article.MatchesSearch(""))
	assert.True(t, article.MatchesSearch("   "))
	assert.True(t, article.MatchesSearch("mindful"))
	assert.True(t, article.MatchesSearch("SARAH"))
	assert.True(t, article.MatchesSearch("portfolios"))
	assert.True(t, article.MatchesSearch("finance"))
	assert.False(t, article.MatchesSearch("quantum"))
}

func TestTagOperations(t *testing.T) {
	article := &Article{}

	article.AddTag("go")
	article.AddTag("go")
	article.AddTag("  ")
	article.AddTag("web")

	assert.Equal(t, []string{"go", "web"}, article.Tags)
	assert.True(t, article.HasTag("go"))

	article.RemoveTag("go")
	assert.Equal(t, []string{"web"}, article.Tags)
	assert.False(t, article.HasTag("go"))
}

func TestArticleSlugFallback(t *testing.T) {
	assert.Equal(t, "mindful-investing", (&Article{Title: "Mindful Investing"}).Slug())
	assert.Equal(t, "article", (&Article{Title: "???"}).Slug())
}

func TestValidate(t *testing.T) {
	require.NoError(t, (&Article{ID: "a", Title: "T"}).Validate())

	err := (&Article{Title: "T"}).Validate()
	assert.ErrorIs(t, err, ErrMalformedImport)

	err = (&Article{ID: "a"}).Validate()
	assert.ErrorIs(t, err, ErrMalformedImport)
}

func TestCloneIsIndependent(t *testing.T) {
	original := &Article{ID: "a", Title: "T", Tags: []string{"one"}}

	dup := original.Clone()
	dup.Title = "changed"
	dup.Tags[0] = "mutated"
	dup.Tags = append(dup.Tags, "two")

	assert.Equal(t, "T", original.Title)
	assert.Equal(t, []string{"one"}, original.Tags)
}

func TestSortOrderIsValid(t *testing.T) {
	assert.True(t, SortDateDesc.IsValid())
	assert.True(t, SortTitleDesc.IsValid())
	assert.False(t, SortOrder("newest").IsValid())
	assert.False(t, SortOrder("").IsValid())
}
