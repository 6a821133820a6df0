package pezzo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"invopo/internal/config"
)

// Client implements port.PromptRenderer against the Pezzo prompt
// deployment API. Credentials are not validated up front; a missing or
// invalid key surfaces as an API error on the first GetPrompt call.
type Client struct {
	apiKey      string
	projectID   string
	environment string
	serverURL   string
	client      *http.Client
}

// NewClient creates a Pezzo prompt client from config.
func NewClient(cfg *config.PezzoConfig) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		projectID:   cfg.ProjectID,
		environment: cfg.Environment,
		serverURL:   strings.TrimRight(cfg.ServerURL, "/"),
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// deploymentResponse models the prompt deployment payload.
type deploymentResponse struct {
	Content struct {
		Prompt string `json:"prompt"`
	} `json:"content"`
}

// GetPrompt fetches the current text of the named prompt template.
func (c *Client) GetPrompt(ctx context.Context, name string) (string, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("environmentName", c.environment)
	reqURL := fmt.Sprintf("%s/api/prompts/v2/deployment?%s", c.serverURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("x-pezzo-api-key", c.apiKey)
	req.Header.Set("x-pezzo-project-id", c.projectID)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling prompt service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading prompt response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("prompt service error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed deploymentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling prompt response: %w", err)
	}
	if parsed.Content.Prompt == "" {
		return "", fmt.Errorf("prompt service returned empty template for %q", name)
	}

	return parsed.Content.Prompt, nil
}
