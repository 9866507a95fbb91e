package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/config"
)

const titlePrompt = `Suggest a catchy and SEO-friendly blog post title for the following article content. Provide only the title text, without any quotes or introductory phrases. Content: %q`

// GeminiClient calls the Gemini generateContent API to propose article
// titles. It is a black box to the rest of the system: one string in, one
// string (or an error) out.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewGeminiClient creates a client from config. An empty API key produces
// a client whose every call reports entities.ErrSuggestionUnavailable.
func NewGeminiClient(cfg config.SuggestConfig) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// SuggestTitle asks the model for a title for the given markdown content.
// The request is bounded by the configured timeout and by ctx.
func (c *GeminiClient) SuggestTitle(ctx context.Context, articleContent string) (string, error) {
	if c.apiKey == "" {
		return "", entities.ErrSuggestionUnavailable
	}

	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf(titlePrompt, articleContent)}}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrSuggestionUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrSuggestionUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: upstream status %d", entities.ErrSuggestionUnavailable, resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrSuggestionUnavailable, err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", entities.ErrSuggestionUnavailable)
	}

	title := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if title == "" {
		return "", fmt.Errorf("%w: blank title", entities.ErrSuggestionUnavailable)
	}
	return title, nil
}
