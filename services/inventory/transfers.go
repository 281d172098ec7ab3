package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tripcraft/config"
	"tripcraft/models"
)

// TransferAPIClient implements TransferSearcher against a REST transfer
// inventory API.
type TransferAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewTransferAPIClient builds a client from the app configuration.
func NewTransferAPIClient() *TransferAPIClient {
	return &TransferAPIClient{
		baseURL: config.AppConfig.TransferAPIBaseURL,
		apiKey:  config.AppConfig.TransferAPIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type transferAPIResponse struct {
	Results []struct {
		ID      string `json:"id"`
		Pickup  string `json:"pickup"`
		Dropoff string `json:"dropoff"`
		Vehicle struct {
			Name     string  `json:"name"`
			Capacity int     `json:"capacity"`
			Price    float64 `json:"price"`
			Currency string  `json:"currency"`
		} `json:"vehicle"`
	} `json:"results"`
}

// SearchTransfers queries the transfer API for vehicles covering the
// airport-to-destination leg.
func (c *TransferAPIClient) SearchTransfers(ctx context.Context, criteria SearchCriteria) ([]models.TransferOffer, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("transfer API not configured")
	}

	path := fmt.Sprintf("%s/v1/transfers?pickup=%s&dropoff=%s&date=%s&passengers=%d",
		c.baseURL,
		url.QueryEscape(criteria.Destination),
		url.QueryEscape(criteria.Destination+"-city"),
		url.QueryEscape(criteria.DepartureDate),
		criteria.Adults+criteria.Children,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transfer search failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transfer API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed transferAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse transfer response: %w", err)
	}

	offers := make([]models.TransferOffer, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.Vehicle.Capacity <= 0 || r.Vehicle.Price <= 0 {
			continue
		}
		offers = append(offers, models.TransferOffer{
			ID:              r.ID,
			PickupLocation:  r.Pickup,
			DropoffLocation: r.Dropoff,
			VehicleName:     r.Vehicle.Name,
			VehicleCapacity: r.Vehicle.Capacity,
			Price:           r.Vehicle.Price,
			Currency:        r.Vehicle.Currency,
		})
	}
	return offers, nil
}
