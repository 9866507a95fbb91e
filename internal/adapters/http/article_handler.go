package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cognitiveflux/core/internal/application/services"
	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
	"github.com/cognitiveflux/core/internal/ports"
)

// ArticleHandler handles article-related requests, both the public read
// surface and the admin editing surface.
type ArticleHandler struct {
	articleService *services.ArticleService
	logger         *logger.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService *services.ArticleService, appLogger *logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		logger:         appLogger,
	}
}

// ListArticles returns a filtered, sorted projection of the collection.
// Query params: search, category ("all" or empty disables the filter),
// sort (dateDesc|dateAsc|titleAsc|titleDesc), limit, offset.
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	filter := ports.ArticleFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     entities.SortOrder(c.QueryParam("sort")),
	}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit parameter")
		}
		filter.Limit = limit
	}
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid offset parameter")
		}
		filter.Offset = offset
	}

	articles, err := h.articleService.List(c.Request().Context(), filter)
	if err != nil {
		if strings.Contains(err.Error(), "invalid sort order") {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Error("List articles failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve articles")
	}

	return c.JSON(http.StatusOK, ListResponse{Data: articles, Total: len(articles)})
}

// GetCategories returns the distinct categories with the "all" sentinel
// prepended.
func (h *ArticleHandler) GetCategories(c echo.Context) error {
	categories, err := h.articleService.Categories(c.Request().Context())
	if err != nil {
		h.logger.Error("Get categories failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// GetArticle returns a single article by id.
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	article, err := h.articleService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrArticleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Article not found")
		}
		h.logger.Error("Get article failed", "error", err, "article_id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve article")
	}
	return c.JSON(http.StatusOK, article)
}

// CreateArticle mints a new article from the submitted form fields.
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	var req ports.SaveArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articleService.Create(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create article failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create article")
	}

	return c.JSON(http.StatusCreated, article)
}

// UpdateArticle replaces an existing article's fields, preserving its id.
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	var req ports.SaveArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articleService.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, entities.ErrArticleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Article not found")
		}
		h.logger.Error("Update article failed", "error", err, "article_id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update article")
	}

	return c.JSON(http.StatusOK, article)
}

// DeleteArticle removes an article by id.
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	if err := h.articleService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, entities.ErrArticleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Article not found")
		}
		h.logger.Error("Delete article failed", "error", err, "article_id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete article")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Article deleted"})
}

// GetStats returns dashboard statistics.
func (h *ArticleHandler) GetStats(c echo.Context) error {
	stats, err := h.articleService.Stats(c.Request().Context())
	if err != nil {
		h.logger.Error("Get stats failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute stats")
	}
	return c.JSON(http.StatusOK, stats)
}

// ExportAll streams the full collection as a downloadable JSON document.
func (h *ArticleHandler) ExportAll(c echo.Context) error {
	doc, err := h.articleService.ExportAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Export failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export articles")
	}
	return sendDocument(c, doc)
}

// ExportMarkdown streams one article as a downloadable markdown document.
func (h *ArticleHandler) ExportMarkdown(c echo.Context) error {
	doc, err := h.articleService.ExportMarkdown(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrArticleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Article not found")
		}
		h.logger.Error("Markdown export failed", "error", err, "article_id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export article")
	}
	return sendDocument(c, doc)
}

// Import merges an uploaded article file into the collection. The payload
// is either a JSON array of articles or a single front-matter markdown
// document, selected by the uploaded filename. A malformed payload leaves
// the store untouched.
func (h *ArticleHandler) Import(c echo.Context) error {
	data, filename, err := readImportPayload(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No import payload provided")
	}

	ctx := c.Request().Context()
	if strings.HasSuffix(strings.ToLower(filename), ".md") {
		article, err := h.articleService.ImportMarkdown(ctx, data)
		if err != nil {
			if errors.Is(err, entities.ErrMalformedImport) {
				return echo.NewHTTPError(http.StatusBadRequest, "Import failed: the document is not a valid article")
			}
			h.logger.Error("Markdown import failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to import article")
		}
		return c.JSON(http.StatusOK, article)
	}

	count, err := h.articleService.ImportJSON(ctx, data)
	if err != nil {
		if errors.Is(err, entities.ErrMalformedImport) {
			return echo.NewHTTPError(http.StatusBadRequest, "Import failed: make sure the JSON structure is an article list")
		}
		h.logger.Error("Import failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to import articles")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Imported %d articles", count)})
}

// readImportPayload accepts either a multipart upload under "file" or a
// raw request body.
func readImportPayload(c echo.Context) ([]byte, string, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		return data, fileHeader.Filename, err
	}

	data, err := io.ReadAll(c.Request().Body)
	if err != nil || len(data) == 0 {
		return nil, "", fmt.Errorf("empty import payload")
	}
	filename := ""
	if strings.Contains(c.Request().Header.Get(echo.HeaderContentType), "markdown") {
		filename = "import.md"
	}
	return data, filename, nil
}

func sendDocument(c echo.Context, doc *ports.ExportDocument) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Body)
}
