// Package suggest supplies the deferred server-side urgency ranking used
// by the server-ranked onboarding phase. Providers are soft dependencies:
// callers fall back to the locally sorted view on any failure.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"quartermaster/internal/models"
)

// HTTPSuggester fetches the ranking from a remote suggestion endpoint.
type HTTPSuggester struct {
	httpClient *http.Client
	BaseURL    string
}

// NewHTTPSuggester creates a suggester for the given base URL.
func NewHTTPSuggester(baseURL string) *HTTPSuggester {
	return &HTTPSuggester{
		httpClient: &http.Client{
			Timeout: time.Second * 5,
		},
		BaseURL: baseURL,
	}
}

// RankSuggestions posts the candidate items and decodes the scored list.
func (s *HTTPSuggester) RankSuggestions(ctx context.Context, items []models.InventoryItem) ([]models.RankedSuggestion, error) {
	payload := struct {
		Items []models.InventoryItem `json:"items"`
	}{Items: items}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/reorder-suggestions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var out struct {
		Suggestions []models.RankedSuggestion `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	return out.Suggestions, nil
}
