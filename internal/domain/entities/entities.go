package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common errors
var (
	ErrArticleNotFound       = errors.New("article not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrMalformedImport       = errors.New("malformed import payload")
	ErrDraftNotFound         = errors.New("no draft stored")
	ErrSuggestionUnavailable = errors.New("title suggestion unavailable")
	ErrSuggestionInFlight    = errors.New("title suggestion already in progress")
)

// DateLayout is the calendar date format used on articles. Lexicographic
// comparison of dates in this layout matches chronological order.
const DateLayout = "2006-01-02"

// Enums and types
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func (ur UserRole) IsValid() bool {
	switch ur {
	case UserRoleAdmin, UserRoleUser:
		return true
	default:
		return false
	}
}

type SortOrder string

const (
	SortDateDesc  SortOrder = "dateDesc"
	SortDateAsc   SortOrder = "dateAsc"
	SortTitleAsc  SortOrder = "titleAsc"
	SortTitleDesc SortOrder = "titleDesc"
)

func (so SortOrder) IsValid() bool {
	switch so {
	case SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc:
		return true
	default:
		return false
	}
}

// CategoryAll is the sentinel category meaning "no category filtering".
const CategoryAll = "all"

// Article is a single piece of published content with metadata and a
// Markdown body. The json field names are the interchange contract for
// bulk import/export and must stay stable.
type Article struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"imageUrl"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
}

// ArticleFields holds every article attribute except the id. Creates mint a
// new id from these fields; updates replace them under an existing id.
type ArticleFields struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"imageUrl"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
}

// User represents an account in the system. Passwords are stored only as
// bcrypt hashes.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Draft is an unsaved, in-progress article form snapshot persisted for
// reload recovery. EditingID is nil while drafting a brand-new article.
// The json keys match the payload the web client historically stored.
type Draft struct {
	Form      ArticleFields `json:"formState"`
	EditingID *string       `json:"editingId"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single hyphen, trimming hyphens at both ends.
func Slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// NewArticleID derives a stable article id from the title and a creation
// timestamp. Empty titles fall back to "untitled".
func NewArticleID(title string, now time.Time) string {
	slug := Slugify(title)
	if slug == "" {
		slug = "untitled"
	}
	return fmt.Sprintf("%s-%d", slug, now.UnixMilli())
}

// PlaceholderImageURL returns a generated placeholder image keyed by the
// given timestamp, used when an article is saved without an image.
func PlaceholderImageURL(now time.Time) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/800/400", now.UnixMilli())
}

// NewArticle builds an article from form fields, minting its id and
// substituting a placeholder image when none was provided.
func NewArticle(fields ArticleFields, now time.Time) *Article {
	a := &Article{ID: NewArticleID(fields.Title, now)}
	a.Apply(fields, now)
	return a
}

// Slug returns the filename-safe form of the title, falling back to
// "article" for titles that slugify to nothing.
func (a *Article) Slug() string {
	if slug := Slugify(a.Title); slug != "" {
		return slug
	}
	return "article"
}

// MatchesSearch reports whether the article matches a case-insensitive
// substring query over title, excerpt, author and comma-joined tags.
// A blank query matches everything.
func (a *Article) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Excerpt), q) ||
		strings.Contains(strings.ToLower(a.Author), q) ||
		strings.Contains(strings.ToLower(strings.Join(a.Tags, ",")), q)
}

func (a *Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends a tag, keeping the tag list an ordered set.
func (a *Article) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" || a.HasTag(tag) {
		return
	}
	a.Tags = append(a.Tags, tag)
}

func (a *Article) RemoveTag(tag string) {
	kept := a.Tags[:0]
	for _, t := range a.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	a.Tags = kept
}

// Fields returns the article's attributes without its id, the shape the
// edit form operates on.
func (a *Article) Fields() ArticleFields {
	return ArticleFields{
		Title:    a.Title,
		Author:   a.Author,
		Date:     a.Date,
		Category: a.Category,
		Tags:     a.Tags,
		ImageURL: a.ImageURL,
		Excerpt:  a.Excerpt,
		Content:  a.Content,
	}
}

// Apply replaces every field except the id, substituting a placeholder
// image when the form left it blank.
func (a *Article) Apply(fields ArticleFields, now time.Time) {
	imageURL := fields.ImageURL
	if imageURL == "" {
		imageURL = PlaceholderImageURL(now)
	}
	tags := fields.Tags
	if tags == nil {
		tags = []string{}
	}
	a.Title = fields.Title
	a.Author = fields.Author
	a.Date = fields.Date
	a.Category = fields.Category
	a.Tags = tags
	a.ImageURL = imageURL
	a.Excerpt = fields.Excerpt
	a.Content = fields.Content
}

// Validate checks the minimal shape an imported article record must have.
func (a *Article) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: missing id", ErrMalformedImport)
	}
	if a.Title == "" {
		return fmt.Errorf("%w: article %q has no title", ErrMalformedImport, a.ID)
	}
	return nil
}

// Clone returns a deep copy so callers can never mutate stored state
// through a returned pointer.
func (a *Article) Clone() *Article {
	dup := *a
	dup.Tags = append([]string(nil), a.Tags...)
	return &dup
}
