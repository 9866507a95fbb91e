package ports

import (
	"context"

	"github.com/cognitiveflux/core/internal/domain/entities"
)

// TitleSuggester is the external collaborator that proposes a title for
// draft content. Implementations are opaque: they either return a suggested
// title or fail, and they never touch application state.
type TitleSuggester interface {
	SuggestTitle(ctx context.Context, content string) (string, error)
}

// Claims carries the identity extracted from an access token.
type Claims struct {
	UserID   string            `json:"user_id"`
	Username string            `json:"username"`
	Role     entities.UserRole `json:"role"`
}

// Auth request/response types

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=4"`
}

type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int64          `json:"expires_in"`
	User        *entities.User `json:"user"`
}

// Article request/response types

type SaveArticleRequest struct {
	Title    string   `json:"title" validate:"required"`
	Author   string   `json:"author" validate:"required"`
	Date     string   `json:"date" validate:"required,datetime=2006-01-02"`
	Category string   `json:"category" validate:"required"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"imageUrl"`
	Excerpt  string   `json:"excerpt" validate:"required"`
	Content  string   `json:"content" validate:"required"`
}

// Fields converts the validated request into domain form fields.
func (r SaveArticleRequest) Fields() entities.ArticleFields {
	return entities.ArticleFields{
		Title:    r.Title,
		Author:   r.Author,
		Date:     r.Date,
		Category: r.Category,
		Tags:     r.Tags,
		ImageURL: r.ImageURL,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
	}
}

// ExportDocument is a downloadable file produced by an export operation.
type ExportDocument struct {
	Filename    string
	ContentType string
	Body        []byte
}

type SuggestTitleRequest struct {
	Content string `json:"content" validate:"required"`
}

type SuggestTitleResponse struct {
	Title string `json:"title"`
}
