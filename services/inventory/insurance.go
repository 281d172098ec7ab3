package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tripcraft/config"
	"tripcraft/models"
)

// InsuranceAPIClient implements InsuranceProvider against a REST policy
// catalog API.
type InsuranceAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewInsuranceAPIClient builds a client from the app configuration.
func NewInsuranceAPIClient() *InsuranceAPIClient {
	return &InsuranceAPIClient{
		baseURL: config.AppConfig.InsuranceAPIBaseURL,
		apiKey:  config.AppConfig.InsuranceAPIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type insuranceAPIResponse struct {
	Policies []struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		CoverageType string  `json:"coverageType"`
		PricePerPax  float64 `json:"pricePerPax"`
		Currency     string  `json:"currency"`
		Rating       float64 `json:"rating"`
	} `json:"policies"`
}

// GetInsuranceOptions fetches the current travel insurance policy catalog.
func (c *InsuranceAPIClient) GetInsuranceOptions(ctx context.Context) ([]models.InsuranceOffer, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("insurance API not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/policies", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insurance fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("insurance API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed insuranceAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse insurance response: %w", err)
	}

	offers := make([]models.InsuranceOffer, 0, len(parsed.Policies))
	for _, p := range parsed.Policies {
		if p.PricePerPax <= 0 {
			continue
		}
		offers = append(offers, models.InsuranceOffer{
			ID:           p.ID,
			Name:         p.Name,
			CoverageType: p.CoverageType,
			Price:        p.PricePerPax,
			Currency:     p.Currency,
			Rating:       p.Rating,
		})
	}
	return offers, nil
}
