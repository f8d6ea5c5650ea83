package distribution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"quartermaster/internal/models"
)

// HTTPSubmitter posts purchase-order requests to the external
// order-submission endpoint.
type HTTPSubmitter struct {
	httpClient *http.Client
	BaseURL    string
	AuthToken  string
}

// NewHTTPSubmitter creates a submitter for the given endpoint base URL.
func NewHTTPSubmitter(baseURL, authToken string) *HTTPSubmitter {
	return &HTTPSubmitter{
		httpClient: &http.Client{
			Timeout: time.Second * 15,
		},
		BaseURL:   baseURL,
		AuthToken: authToken,
	}
}

// Submit posts one purchase order and decodes the endpoint's verdict.
func (s *HTTPSubmitter) Submit(ctx context.Context, poReq models.PurchaseOrderRequest) (models.PurchaseOrderResponse, error) {
	var out models.PurchaseOrderResponse

	body, err := json.Marshal(poReq)
	if err != nil {
		return out, fmt.Errorf("failed to encode purchase order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/purchase-orders", bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AuthToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("purchase order request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("failed to read purchase order response: %w", err)
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("unexpected purchase order response (status %d): %w", resp.StatusCode, err)
	}
	return out, nil
}
