package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognitiveflux/core/internal/adapters/repository"
	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
	"github.com/cognitiveflux/core/internal/ports"
)

func newTestArticleService(repo ports.ArticleRepository, at time.Time) *ArticleService {
	svc := NewArticleService(repo, logger.NewNop())
	svc.now = func() time.Time { return at }
	return svc
}

func saveRequest(title string) ports.SaveArticleRequest {
	return ports.SaveArticleRequest{
		Title:    title,
		Author:   "Jane",
		Date:     "2024-05-01",
		Category: "Technology",
		Tags:     []string{"go"},
		Excerpt:  "An excerpt",
		Content:  "Body text",
	}
}

func TestCreateMintsIDAndPlaceholderImage(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewArticleRepository()
	svc := newTestArticleService(repo, time.UnixMilli(1700000000000))

	article, err := svc.Create(ctx, saveRequest("Hello World"))
	require.NoError(t, err)

	assert.Equal(t, "hello-world-1700000000000", article.ID)
	assert.Equal(t, "https://picsum.photos/seed/1700000000000/800/400", article.ImageURL)

	stored, err := repo.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", stored.Title)
}

func TestCreateInsertsAtFront(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewArticleRepository()

	svc := newTestArticleService(repo, time.UnixMilli(1000))
	_, err := svc.Create(ctx, saveRequest("First"))
	require.NoError(t, err)

	svc.now = func() time.Time { return time.UnixMilli(2000) }
	_, err = svc.Create(ctx, saveRequest("Second"))
	require.NoError(t, err)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Title)
}

func TestUpdatePreservesID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewArticleRepository()
	svc := newTestArticleService(repo, time.UnixMilli(1700000000000))

	created, err := svc.Create(ctx, saveRequest("Hello World"))
	require.NoError(t, err)

	req := saveRequest("Completely New Title")
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Completely New Title", updated.Title)
}

func TestUpdateMissingArticle(t *testing.T) {
	svc := newTestArticleService(repository.NewArticleRepository(), time.UnixMilli(1000))

	_, err := svc.Update(context.Background(), "nope", saveRequest("X"))
	assert.ErrorIs(t, err, entities.ErrArticleNotFound)
}

func TestDeleteMissingArticle(t *testing.T) {
	svc := newTestArticleService(repository.NewArticleRepository(), time.UnixMilli(1000))

	err := svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, entities.ErrArticleNotFound)
}

func TestListRejectsUnknownSort(t *testing.T) {
	svc := newTestArticleService(repository.NewArticleRepository(), time.UnixMilli(1000))

	_, err := svc.List(context.Background(), ports.ArticleFilter{Sort: "newest"})
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	repo := repository.NewSeededArticleRepository([]*entities.Article{
		{ID: "a", Title: "A", Date: "2024-05-01", Category: "Finance", Tags: []string{}},
		{ID: "b", Title: "B", Date: "2024-04-30", Category: "Finance", Tags: []string{}},
		{ID: "c", Title: "C", Date: "2024-05-01", Category: "Technology", Tags: []string{}},
	})
	svc := newTestArticleService(repo, now)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 2, stats.Categories)
}

func TestImportJSONMergesCollection(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSeededArticleRepository([]*entities.Article{
		{ID: "keep", Title: "Keep", Date: "2024-01-01", Tags: []string{}},
		{ID: "old", Title: "Old version", Date: "2024-01-02", Tags: []string{}},
	})
	svc := newTestArticleService(repo, time.UnixMilli(1000))

	payload, err := json.Marshal([]*entities.Article{
		{ID: "old", Title: "New version", Date: "2024-03-01"},
		{ID: "fresh", Title: "Fresh", Date: "2024-02-01"},
	})
	require.NoError(t, err)

	count, err := svc.ImportJSON(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Merged and re-sorted by date descending.
	assert.Equal(t, "old", all[0].ID)
	assert.Equal(t, "New version", all[0].Title)
	assert.Equal(t, "fresh", all[1].ID)
	assert.Equal(t, "keep", all[2].ID)
}

func TestImportJSONMalformedLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSeededArticleRepository([]*entities.Article{
		{ID: "keep", Title: "Keep", Date: "2024-01-01", Tags: []string{}},
	})
	svc := newTestArticleService(repo, time.UnixMilli(1000))

	payloads := [][]byte{
		[]byte(`{"id": "not-a-list"}`),
		[]byte(`not json at all`),
		[]byte(`[{"title": "record without id"}]`),
		[]byte(`[null]`),
	}

	for _, payload := range payloads {
		_, err := svc.ImportJSON(ctx, payload)
		assert.ErrorIs(t, err, entities.ErrMalformedImport)
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "keep", all[0].ID)
}

func TestImportJSONIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewArticleRepository()
	svc := newTestArticleService(repo, time.UnixMilli(1000))

	payload := []byte(`[{"id": "a", "title": "A", "date": "2024-01-01"}]`)

	_, err := svc.ImportJSON(ctx, payload)
	require.NoError(t, err)
	_, err = svc.ImportJSON(ctx, payload)
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExportAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSeededArticleRepository([]*entities.Article{
		{ID: "a", Title: "A", Date: "2024-01-01", Tags: []string{}},
	})
	svc := newTestArticleService(repo, time.UnixMilli(1700000000000))

	doc, err := svc.ExportAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, "articles-1700000000000.json", doc.Filename)
	assert.Equal(t, "application/json", doc.ContentType)

	var decoded []*entities.Article
	require.NoError(t, json.Unmarshal(doc.Body, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "a", decoded[0].ID)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	seed := repository.DefaultArticles()
	svc := newTestArticleService(repository.NewSeededArticleRepository(seed), time.UnixMilli(1000))

	doc, err := svc.ExportAll(ctx)
	require.NoError(t, err)

	target := repository.NewArticleRepository()
	targetSvc := newTestArticleService(target, time.UnixMilli(2000))

	count, err := targetSvc.ImportJSON(ctx, doc.Body)
	require.NoError(t, err)
	assert.Equal(t, len(seed), count)

	for _, want := range seed {
		got, err := target.GetByID(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want.Title, got.Title)
		assert.Equal(t, want.Content, got.Content)
	}
}

func TestExportMarkdown(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSeededArticleRepository([]*entities.Article{
		{
			ID:       "mindful-investing-1",
			Title:    "Mindful Investing",
			Author:   "Sarah Chen",
			Date:     "2024-05-01",
			Category: "Finance",
			Tags:     []string{"AI", "Finance"},
			ImageURL: "https://example.com/pic.png",
			Excerpt:  "How AI reshapes portfolios.",
			Content:  "## Heading\n\nBody text.",
		},
	})
	svc := newTestArticleService(repo, time.UnixMilli(1000))

	doc, err := svc.ExportMarkdown(ctx, "mindful-investing-1")
	require.NoError(t, err)

	assert.Equal(t, "mindful-investing.md", doc.Filename)
	assert.Equal(t, "text/markdown", doc.ContentType)

	expected := `---
title: Mindful Investing
author: Sarah Chen
date: 2024-05-01
category: Finance
tags: [AI, Finance]
image: https://example.com/pic.png
---

> How AI reshapes portfolios.

## Heading

Body text.`
	assert.Equal(t, expected, string(doc.Body))
}

func TestMarkdownRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSeededArticleRepository([]*entities.Article{
		{
			ID:       "origin-1",
			Title:    "Original Title",
			Author:   "Sarah Chen",
			Date:     "2024-05-01",
			Category: "Finance",
			Tags:     []string{"AI", "Finance"},
			ImageURL: "https://example.com/pic.png",
			Excerpt:  "The excerpt line.",
			Content:  "Body paragraph one.\n\nBody paragraph two.",
		},
	})
	svc := newTestArticleService(repo, time.UnixMilli(1000))

	doc, err := svc.ExportMarkdown(ctx, "origin-1")
	require.NoError(t, err)

	target := repository.NewArticleRepository()
	targetSvc := newTestArticleService(target, time.UnixMilli(1700000000000))

	imported, err := targetSvc.ImportMarkdown(ctx, doc.Body)
	require.NoError(t, err)

	assert.Equal(t, "original-title-1700000000000", imported.ID)
	assert.Equal(t, "Original Title", imported.Title)
	assert.Equal(t, "Sarah Chen", imported.Author)
	assert.Equal(t, "2024-05-01", imported.Date)
	assert.Equal(t, []string{"AI", "Finance"}, imported.Tags)
	assert.Equal(t, "https://example.com/pic.png", imported.ImageURL)
	assert.Equal(t, "The excerpt line.", imported.Excerpt)
	assert.Equal(t, "Body paragraph one.\n\nBody paragraph two.", imported.Content)
}

func TestImportMarkdownMalformed(t *testing.T) {
	svc := newTestArticleService(repository.NewArticleRepository(), time.UnixMilli(1000))

	_, err := svc.ImportMarkdown(context.Background(), []byte("just some text"))
	assert.ErrorIs(t, err, entities.ErrMalformedImport)
}
