package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/muslimtime-api/internal/domain"
)

// Client fetches daily prayer schedules from the aladhan.com REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type timingsPayload struct {
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Sunrise string `json:"Sunrise"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
		Date struct {
			Readable string `json:"readable"`
			Hijri    struct {
				Date string `json:"date"`
			} `json:"hijri"`
		} `json:"date"`
		Meta struct {
			Timezone string `json:"timezone"`
		} `json:"meta"`
	} `json:"data"`
}

// ByCity returns today's prayer times for a city and country.
func (c *Client) ByCity(ctx context.Context, city, country string) (*domain.PrayerTimes, error) {
	q := url.Values{}
	q.Set("city", city)
	q.Set("country", country)
	return c.fetch(ctx, c.baseURL+"/timingsByCity?"+q.Encode())
}

// ByCoordinates returns today's prayer times for a latitude and longitude.
func (c *Client) ByCoordinates(ctx context.Context, lat, lng float64) (*domain.PrayerTimes, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", lat))
	q.Set("longitude", fmt.Sprintf("%f", lng))
	return c.fetch(ctx, c.baseURL+"/timings?"+q.Encode())
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*domain.PrayerTimes, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch prayer times: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from prayer API", resp.StatusCode)
	}

	var payload timingsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode prayer times: %w", err)
	}

	return &domain.PrayerTimes{
		Date:     payload.Data.Date.Readable,
		Hijri:    payload.Data.Date.Hijri.Date,
		Timezone: payload.Data.Meta.Timezone,
		Fajr:     payload.Data.Timings.Fajr,
		Sunrise:  payload.Data.Timings.Sunrise,
		Dhuhr:    payload.Data.Timings.Dhuhr,
		Asr:      payload.Data.Timings.Asr,
		Maghrib:  payload.Data.Timings.Maghrib,
		Isha:     payload.Data.Timings.Isha,
	}, nil
}
