package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"tripcraft/config"
	"tripcraft/models"
)

// AmadeusClient implements FlightSearcher and HotelSearcher against the
// Amadeus self-service APIs.
type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	accessToken  string
	tokenExpiry  time.Time
	mu           sync.Mutex
	httpClient   *http.Client
}

// NewAmadeusClient builds a client from the app configuration. The test
// environment is used unless AMADEUS_ENV is set to "production".
func NewAmadeusClient() *AmadeusClient {
	baseURL := "https://test.api.amadeus.com"
	if config.AppConfig.AmadeusEnv == "production" {
		baseURL = "https://api.amadeus.com"
	}
	return &AmadeusClient{
		clientID:     config.AppConfig.AmadeusClientID,
		clientSecret: config.AppConfig.AmadeusClientSecret,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *AmadeusClient) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) doRequest(ctx context.Context, method, path string) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// SearchFlights queries the Flight Offers Search API. Each returned itinerary
// leg becomes one FlightOffer; round trips yield one offer per leg so the
// aggregator can bucket them by direction.
func (c *AmadeusClient) SearchFlights(ctx context.Context, criteria SearchCriteria) ([]models.FlightOffer, error) {
	if c.clientID == "" {
		return nil, fmt.Errorf("amadeus not configured")
	}

	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s"+
			"&departureDate=%s&returnDate=%s&adults=%d&max=10&currencyCode=USD",
		url.QueryEscape(criteria.Origin),
		url.QueryEscape(criteria.Destination),
		url.QueryEscape(criteria.DepartureDate),
		url.QueryEscape(criteria.ReturnDate),
		criteria.Adults,
	)

	body, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	return parseFlightOffers(body)
}

type amadeusSegment struct {
	Departure struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
}

type amadeusFlightOffersResponse struct {
	Data []struct {
		ID    string `json:"id"`
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Currency   string `json:"currency"`
		} `json:"price"`
		NumberOfBookableSeats int `json:"numberOfBookableSeats"`
		Itineraries           []struct {
			Duration string           `json:"duration"`
			Segments []amadeusSegment `json:"segments"`
		} `json:"itineraries"`
	} `json:"data"`
}

func parseFlightOffers(data []byte) ([]models.FlightOffer, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	offers := make([]models.FlightOffer, 0, len(resp.Data))
	for _, d := range resp.Data {
		price := parsePrice(d.Price.GrandTotal)
		if price <= 0 {
			continue
		}
		for i, it := range d.Itineraries {
			if len(it.Segments) == 0 {
				continue
			}
			first := it.Segments[0]
			last := it.Segments[len(it.Segments)-1]
			offers = append(offers, models.FlightOffer{
				ID:               fmt.Sprintf("%s-%d", d.ID, i),
				Airline:          first.CarrierCode,
				FlightNumber:     first.CarrierCode + first.Number,
				DepartureAirport: first.Departure.IataCode,
				ArrivalAirport:   last.Arrival.IataCode,
				DepartureTime:    first.Departure.At,
				Duration:         it.Duration,
				Stops:            len(it.Segments) - 1,
				Seats:            d.NumberOfBookableSeats,
				Price:            price,
				Currency:         d.Price.Currency,
			})
		}
	}
	return offers, nil
}

// SearchHotels queries the Hotel List API for the destination city and the
// Hotel Offers API for room availability.
func (c *AmadeusClient) SearchHotels(ctx context.Context, criteria SearchCriteria) ([]models.HotelOffer, error) {
	if c.clientID == "" {
		return nil, fmt.Errorf("amadeus not configured")
	}

	listPath := fmt.Sprintf("/v1/reference-data/locations/hotels/by-city?cityCode=%s",
		url.QueryEscape(criteria.Destination))
	body, err := c.doRequest(ctx, http.MethodGet, listPath)
	if err != nil {
		return nil, fmt.Errorf("hotel list failed: %w", err)
	}

	var listResp struct {
		Data []struct {
			HotelID string `json:"hotelId"`
			Name    string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel list: %w", err)
	}
	if len(listResp.Data) == 0 {
		return []models.HotelOffer{}, nil
	}

	ids := make([]string, 0, 20)
	for _, h := range listResp.Data {
		ids = append(ids, h.HotelID)
		if len(ids) == 20 {
			break
		}
	}

	offersPath := fmt.Sprintf("/v3/shopping/hotel-offers?hotelIds=%s&checkInDate=%s&checkOutDate=%s&adults=%d",
		url.QueryEscape(strings.Join(ids, ",")),
		url.QueryEscape(criteria.DepartureDate),
		url.QueryEscape(criteria.ReturnDate),
		criteria.Adults,
	)
	body, err = c.doRequest(ctx, http.MethodGet, offersPath)
	if err != nil {
		return nil, fmt.Errorf("hotel offers failed: %w", err)
	}
	return parseHotelOffers(body)
}

type amadeusHotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			HotelID  string `json:"hotelId"`
			Name     string `json:"name"`
			CityCode string `json:"cityCode"`
			Rating   string `json:"rating"`
		} `json:"hotel"`
		Offers []struct {
			Room struct {
				TypeEstimated struct {
					Category string `json:"category"`
				} `json:"typeEstimated"`
			} `json:"room"`
			Guests struct {
				Adults int `json:"adults"`
			} `json:"guests"`
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

func parseHotelOffers(data []byte) ([]models.HotelOffer, error) {
	var resp amadeusHotelOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel offers: %w", err)
	}

	hotels := make([]models.HotelOffer, 0, len(resp.Data))
	for _, d := range resp.Data {
		rating, _ := strconv.ParseFloat(d.Hotel.Rating, 64)
		hotel := models.HotelOffer{
			ID:     d.Hotel.HotelID,
			Name:   d.Hotel.Name,
			City:   d.Hotel.CityCode,
			Rating: rating,
		}
		for _, o := range d.Offers {
			price := parsePrice(o.Price.Total)
			if price <= 0 {
				continue
			}
			occupancy := o.Guests.Adults
			if occupancy == 0 {
				occupancy = 2
			}
			hotel.Rooms = append(hotel.Rooms, models.HotelRoom{
				Name:         o.Room.TypeEstimated.Category,
				Price:        price,
				Currency:     o.Price.Currency,
				MaxOccupancy: occupancy,
			})
			hotel.Currency = o.Price.Currency
		}
		if len(hotel.Rooms) > 0 {
			hotels = append(hotels, hotel)
		}
	}
	return hotels, nil
}

func parsePrice(s string) float64 {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return p
}
