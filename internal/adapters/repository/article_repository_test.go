package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/ports"
)

func testArticle(id, title, date, category string) *entities.Article {
	return &entities.Article{
		ID:       id,
		Title:    title,
		Author:   "Tester",
		Date:     date,
		Category: category,
		Tags:     []string{},
	}
}

func TestInsertPutsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewArticleRepository()

	require.NoError(t, repo.Insert(ctx, testArticle("a", "First", "2024-01-01", "Tech")))
	require.NoError(t, repo.Insert(ctx, testArticle("b", "Second", "2024-01-02", "Tech")))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}

func TestInsertRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewArticleRepository()

	require.NoError(t, repo.Insert(ctx, testArticle("a", "First", "2024-01-01", "Tech")))
	assert.Error(t, repo.Insert(ctx, testArticle("a", "Again", "2024-01-02", "Tech")))
}

func TestGetByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewArticleRepository()
	require.NoError(t, repo.Insert(ctx, testArticle("a", "First", "2024-01-01", "Tech")))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)

	got.Title = "mutated"

	again, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "First", again.Title)
}

func TestGetByIDMissing(t *testing.T) {
	repo := NewArticleRepository()

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, entities.ErrArticleNotFound)
}

func TestReplaceKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededArticleRepository([]*entities.Article{
		testArticle("a", "A", "2024-01-01", "Tech"),
		testArticle("b", "B", "2024-01-02", "Tech"),
	})

	updated := testArticle("b", "B updated", "2024-01-02", "Tech")
	require.NoError(t, repo.Replace(ctx, updated))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "B updated", all[1].Title)
}

func TestReplaceMissing(t *testing.T) {
	repo := NewArticleRepository()

	err := repo.Replace(context.Background(), testArticle("nope", "X", "2024-01-01", "Tech"))
	assert.ErrorIs(t, err, entities.ErrArticleNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededArticleRepository([]*entities.Article{
		testArticle("a", "A", "2024-01-01", "Tech"),
	})

	require.NoError(t, repo.Delete(ctx, "a"))
	assert.ErrorIs(t, repo.Delete(ctx, "a"), entities.ErrArticleNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededArticleRepository([]*entities.Article{
		testArticle("a", "Cognitive Wealth", "2024-01-03", "Finance"),
		testArticle("b", "AI Side Hustles", "2024-01-01", "Technology"),
		testArticle("c", "Deep Focus", "2024-01-02", "Productivity"),
	})

	tests := []struct {
		name        string
		filter      ports.ArticleFilter
		expectedIDs []string
	}{
		{
			name:        "no filter defaults to date descending",
			filter:      ports.ArticleFilter{},
			expectedIDs: []string{"a", "c", "b"},
		},
		{
			name:        "blank search matches everything",
			filter:      ports.ArticleFilter{Search: "   "},
			expectedIDs: []string{"a", "c", "b"},
		},
		{
			name:        "search narrows by title",
			filter:      ports.ArticleFilter{Search: "wealth"},
			expectedIDs: []string{"a"},
		},
		{
			name:        "category filter",
			filter:      ports.ArticleFilter{Category: "Technology"},
			expectedIDs: []string{"b"},
		},
		{
			name:        "all sentinel disables category filter",
			filter:      ports.ArticleFilter{Category: entities.CategoryAll},
			expectedIDs: []string{"a", "c", "b"},
		},
		{
			name:        "sort date ascending",
			filter:      ports.ArticleFilter{Sort: entities.SortDateAsc},
			expectedIDs: []string{"b", "c", "a"},
		},
		{
			name:        "sort title ascending",
			filter:      ports.ArticleFilter{Sort: entities.SortTitleAsc},
			expectedIDs: []string{"b", "a", "c"},
		},
		{
			name:        "sort title descending",
			filter:      ports.ArticleFilter{Sort: entities.SortTitleDesc},
			expectedIDs: []string{"c", "a", "b"},
		},
		{
			name:        "limit and offset page the result",
			filter:      ports.ArticleFilter{Sort: entities.SortDateAsc, Offset: 1, Limit: 1},
			expectedIDs: []string{"c"},
		},
		{
			name:        "offset past the end is empty",
			filter:      ports.ArticleFilter{Offset: 10},
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestSortIsStableForEqualDates(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededArticleRepository([]*entities.Article{
		testArticle("a", "A", "2024-01-01", "Tech"),
		testArticle("b", "B", "2024-01-01", "Tech"),
		testArticle("c", "C", "2024-01-01", "Tech"),
	})

	got, err := repo.List(ctx, ports.ArticleFilter{Sort: entities.SortDateDesc})
	require.NoError(t, err)

	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestMergeOverwritesAndAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededArticleRepository([]*entities.Article{
		testArticle("a", "A", "2024-01-03", "Tech"),
		testArticle("b", "B", "2024-01-01", "Tech"),
	})

	incoming := []*entities.Article{
		testArticle("b", "B imported", "2024-01-05", "Tech"),
		testArticle("z", "Z new", "2024-01-02", "Tech"),
	}
	require.NoError(t, repo.Merge(ctx, incoming))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Re-sorted by date descending after the merge.
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "B imported", all[0].Title)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "z", all[2].ID)
}

func TestMergeLaterEntryWins(t *testing.T) {
	ctx := context.Background()
	repo := NewArticleRepository()

	incoming := []*entities.Article{
		testArticle("dup", "First version", "2024-01-01", "Tech"),
		testArticle("dup", "Second version", "2024-01-01", "Tech"),
	}
	require.NoError(t, repo.Merge(ctx, incoming))

	got, err := repo.GetByID(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "Second version", got.Title)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMergeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewArticleRepository()

	incoming := []*entities.Article{
		testArticle("a", "A", "2024-01-01", "Tech"),
		testArticle("b", "B", "2024-01-02", "Tech"),
	}

	require.NoError(t, repo.Merge(ctx, incoming))
	first, err := repo.All(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Merge(ctx, incoming))
	second, err := repo.All(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDistinctCategories(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededArticleRepository([]*entities.Article{
		testArticle("a", "A", "2024-01-01", "Finance"),
		testArticle("b", "B", "2024-01-02", "Technology"),
		testArticle("c", "C", "2024-01-03", "Finance"),
		testArticle("d", "D", "2024-01-04", ""),
	})

	categories, err := repo.DistinctCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{entities.CategoryAll, "Finance", "Technology"}, categories)
}

func TestDefaultArticlesAreWellFormed(t *testing.T) {
	seed := DefaultArticles()
	require.NotEmpty(t, seed)

	seen := map[string]bool{}
	for _, a := range seed {
		require.NoError(t, a.Validate())
		assert.False(t, seen[a.ID], "duplicate seed id %s", a.ID)
		seen[a.ID] = true
	}
}
