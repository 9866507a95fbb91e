package ports

import (
	"context"

	"github.com/cognitiveflux/core/internal/domain/entities"
)

// ArticleRepository defines the interface for the article collection.
// Implementations must guarantee id uniqueness across all mutations and
// must never expose internal state through returned pointers.
type ArticleRepository interface {
	Insert(ctx context.Context, article *entities.Article) error
	GetByID(ctx context.Context, id string) (*entities.Article, error)
	Replace(ctx context.Context, article *entities.Article) error
	Delete(ctx context.Context, id string) error
	// List returns a filtered, sorted projection of the collection without
	// mutating it.
	List(ctx context.Context, filter ArticleFilter) ([]*entities.Article, error)
	// All returns the full collection in storage order.
	All(ctx context.Context) ([]*entities.Article, error)
	// Merge replaces articles whose ids already exist and adds the rest,
	// then re-sorts the collection by date descending. The merge is atomic.
	Merge(ctx context.Context, incoming []*entities.Article) error
	Count(ctx context.Context) (int, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

// UserRepository defines the interface for the user set.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}

// DraftRepository persists at most one in-progress edit form under a fixed
// key. Load returns entities.ErrDraftNotFound when nothing usable is stored;
// an unreadable payload counts as nothing stored.
type DraftRepository interface {
	Save(ctx context.Context, draft *entities.Draft) error
	Load(ctx context.Context) (*entities.Draft, error)
	Clear(ctx context.Context) error
}

// ArticleFilter describes a read-only projection over the article
// collection: search and category narrow the set, Sort orders the result.
type ArticleFilter struct {
	Search   string
	Category string
	Sort     entities.SortOrder
	Limit    int
	Offset   int
}

// Stats summarizes the collection for the admin dashboard.
type Stats struct {
	Total      int `json:"total"`
	Today      int `json:"today"`
	Categories int `json:"categories"`
}
