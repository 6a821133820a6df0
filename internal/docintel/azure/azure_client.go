package azure

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"invopo/internal/config"
	"invopo/internal/domain"
	"invopo/internal/port"
)

// Client implements port.DocumentIntelligence using the Azure Document
// Intelligence REST API (begin-analyze plus polling).
type Client struct {
	endpoint     string
	key          string
	apiVersion   string
	model        string
	pollInterval time.Duration
	timeout      time.Duration
	client       *http.Client
}

// NewClient creates a document intelligence client from config.
func NewClient(cfg *config.VisionConfig) *Client {
	pollInterval := time.Duration(cfg.PollIntervalSecs) * time.Second
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	model := cfg.Model
	if model == "" {
		model = "prebuilt-layout"
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "2024-11-30"
	}
	return &Client{
		endpoint:     strings.TrimRight(cfg.Endpoint, "/"),
		key:          cfg.Key,
		apiVersion:   apiVersion,
		model:        model,
		pollInterval: pollInterval,
		timeout:      timeout,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Analyze submits the file for layout analysis and polls until the
// operation succeeds or fails. The overall call is bounded by the
// configured timeout.
func (c *Client) Analyze(ctx context.Context, filePath string) (*port.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	opURL, err := c.beginAnalyze(ctx, data)
	if err != nil {
		return nil, err
	}

	for {
		result, done, err := c.pollResult(ctx, opURL)
		if err != nil {
			return nil, err
		}
		if done {
			return result, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for analysis: %w", ctx.Err())
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Client) beginAnalyze(ctx context.Context, data []byte) (string, error) {
	reqBody, err := json.Marshal(map[string]string{
		"base64Source": base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		c.endpoint, c.model, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(reqBody)))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling document intelligence API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("document intelligence API error (status %d): %s", resp.StatusCode, string(body))
	}

	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("document intelligence API returned no Operation-Location header")
	}
	return opURL, nil
}

// analyzeResponse models the analysis operation status document.
type analyzeResponse struct {
	Status string `json:"status"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	AnalyzeResult struct {
		Content string `json:"content"`
		Tables  []struct {
			RowCount    int `json:"rowCount"`
			ColumnCount int `json:"columnCount"`
			Cells       []struct {
				Kind        string `json:"kind"`
				RowIndex    int    `json:"rowIndex"`
				ColumnIndex int    `json:"columnIndex"`
				Content     string `json:"content"`
			} `json:"cells"`
		} `json:"tables"`
	} `json:"analyzeResult"`
}

func (c *Client) pollResult(ctx context.Context, opURL string) (*port.AnalysisResult, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("creating poll request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("polling analysis result: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("reading poll response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("document intelligence API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, false, fmt.Errorf("unmarshaling poll response: %w", err)
	}

	switch parsed.Status {
	case "succeeded":
		return toResult(&parsed), true, nil
	case "failed":
		if parsed.Error != nil {
			return nil, false, fmt.Errorf("analysis failed: %s: %s", parsed.Error.Code, parsed.Error.Message)
		}
		return nil, false, fmt.Errorf("analysis failed")
	default:
		// notStarted or running
		return nil, false, nil
	}
}

// toResult flattens the analyze result into text plus row/column tables.
// The first table row is treated as the header row, matching the
// prebuilt-layout convention of marking row 0 cells as column headers.
func toResult(resp *analyzeResponse) *port.AnalysisResult {
	result := &port.AnalysisResult{Text: resp.AnalyzeResult.Content}

	for _, t := range resp.AnalyzeResult.Tables {
		if t.RowCount == 0 || t.ColumnCount == 0 {
			continue
		}
		grid := make([][]string, t.RowCount)
		for i := range grid {
			grid[i] = make([]string, t.ColumnCount)
		}
		for _, cell := range t.Cells {
			if cell.RowIndex < t.RowCount && cell.ColumnIndex < t.ColumnCount {
				grid[cell.RowIndex][cell.ColumnIndex] = cell.Content
			}
		}
		result.Tables = append(result.Tables, domain.Table{
			Headers: grid[0],
			Rows:    grid[1:],
		})
	}

	return result
}
