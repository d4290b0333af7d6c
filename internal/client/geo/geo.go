// Package geo provides one-shot device location for field check-in.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.5f, %.5f", c.Lat, c.Lon)
}

// Locator resolves the current position once.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

var ErrNoFix = errors.New("no position fix")

// StaticLocator reports configured coordinates. A nil *StaticLocator has no fix.
type StaticLocator struct {
	Coords Coordinates
}

func (s *StaticLocator) Locate(ctx context.Context) (Coordinates, error) {
	if s == nil {
		return Coordinates{}, ErrNoFix
	}
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	return s.Coords, nil
}

// HTTPLocator asks a JSON endpoint answering {"lat": .., "lon": ..}.
type HTTPLocator struct {
	url    string
	client *http.Client
}

func NewHTTPLocator(url string, timeout time.Duration) *HTTPLocator {
	return &HTTPLocator{url: url, client: &http.Client{Timeout: timeout}}
}

func (h *HTTPLocator) Locate(ctx context.Context) (Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("build locate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("locate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Coordinates{}, fmt.Errorf("locate: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err != nil {
		return Coordinates{}, fmt.Errorf("decode position: %w", err)
	}
	if body.Lat == nil || body.Lon == nil {
		return Coordinates{}, ErrNoFix
	}
	return Coordinates{Lat: *body.Lat, Lon: *body.Lon}, nil
}
