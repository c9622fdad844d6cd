// Package geo provides the one-shot position lookup used during
// onboarding. Exactly one outstanding request is assumed; there is no
// retry or backoff, and every failure falls through to the caller's skip
// path.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/drpriyanshi/companion-tui/internal/util"
)

var (
	// ErrUnsupported means no locator is configured on this install.
	ErrUnsupported = errors.New("location lookup is not supported on this device")
	// ErrPermissionDenied means the user declined the consent prompt.
	ErrPermissionDenied = errors.New("location permission denied")
)

// RequestTimeout bounds a single lookup.
const RequestTimeout = 10 * time.Second

// Position is one fix.
type Position struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// Locator resolves the device position once per call.
type Locator interface {
	Locate(ctx context.Context) (Position, error)
}

// FromConfig picks the locator implementation for the configured mode.
func FromConfig(cfg util.Config) Locator {
	switch cfg.LocationMode {
	case "static":
		return StaticLocator{Position: Position{Latitude: cfg.Latitude, Longitude: cfg.Longitude}}
	case "ip":
		return NewIPLocator(cfg.LocationURL)
	default:
		return unsupportedLocator{}
	}
}

type unsupportedLocator struct{}

func (unsupportedLocator) Locate(context.Context) (Position, error) {
	return Position{}, ErrUnsupported
}

// StaticLocator returns a fixed position from config.
type StaticLocator struct {
	Position Position
}

func (s StaticLocator) Locate(context.Context) (Position, error) {
	return s.Position, nil
}

const defaultLookupURL = "http://ip-api.com/json"

// IPLocator resolves a coarse position from the machine's public IP.
type IPLocator struct {
	url    string
	client *http.Client
}

func NewIPLocator(url string) *IPLocator {
	if url == "" {
		url = defaultLookupURL
	}
	return &IPLocator{url: url, client: &http.Client{Timeout: RequestTimeout}}
}

func (l *IPLocator) Locate(ctx context.Context) (Position, error) {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return Position{}, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return Position{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Position{}, fmt.Errorf("location lookup failed: status %d", resp.StatusCode)
	}
	var body struct {
		Status  string  `json:"status"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		City    string  `json:"city"`
		Country string  `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Position{}, err
	}
	if body.Status != "" && body.Status != "success" {
		return Position{}, fmt.Errorf("location lookup failed: %s", body.Status)
	}
	addr := body.City
	if body.Country != "" {
		if addr != "" {
			addr += ", "
		}
		addr += body.Country
	}
	return Position{Latitude: body.Lat, Longitude: body.Lon, Address: addr}, nil
}
