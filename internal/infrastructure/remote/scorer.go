package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"DocAuditor/internal/domain"
	"DocAuditor/internal/ports"
)

// Scorer talks to an optional external scoring service. Any failure here is
// recoverable: the pipeline falls back to the local dimension scorers, so
// this client favors clear errors over retries.
type Scorer struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.RemoteScorer = (*Scorer)(nil)

// NewScorer creates a reusable HTTP client for the /score endpoint.
func NewScorer(endpoint, apiKey string) *Scorer {
	return &Scorer{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Score posts the document and expects the four-dimension result map back.
// A response missing any dimension is treated as a failure so the caller
// falls back rather than synthesizing from partial data.
func (s *Scorer) Score(ctx context.Context, doc domain.Document) (map[domain.Dimension]domain.DimensionResult, error) {
	if s == nil || s.endpoint == "" {
		return nil, fmt.Errorf("remote scorer not configured")
	}

	payload := map[string]any{
		"title":   doc.Title,
		"content": doc.Body,
	}

	var results map[domain.Dimension]domain.DimensionResult
	if err := s.post(ctx, "/score", payload, &results); err != nil {
		return nil, err
	}

	for _, dim := range domain.Dimensions() {
		if _, ok := results[dim]; !ok {
			return nil, fmt.Errorf("remote scorer omitted %s", dim)
		}
	}

	return results, nil
}

func (s *Scorer) post(ctx context.Context, path string, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
