package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/grid-tools/fuelmix/pkg/adapters"
	"github.com/grid-tools/fuelmix/pkg/models/api"
	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Error represents a non-success response from an upstream feed.
type Error struct {
	StatusCode int
	URL        string
}

func (e *Error) Error() string {
	return fmt.Sprintf("feed %s returned status %d", e.URL, e.StatusCode)
}

// Client fetches monthly and daily energy statsets for one network feed.
// It implements the share service's MonthlyProvider and DailyProvider.
type Client struct {
	profile domain.NetworkProfile
	http    *http.Client
}

func NewClient(profile domain.NetworkProfile) *Client {
	return &Client{
		profile: profile,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// FetchMonthly retrieves the full monthly energy statset for the network.
func (c *Client) FetchMonthly(ctx context.Context) (api.StatSet, error) {
	return c.fetch(ctx, c.profile.MonthlyURL)
}

// FetchDaily retrieves the daily energy statset for one calendar year.
func (c *Client) FetchDaily(ctx context.Context, year int) (api.StatSet, error) {
	url := strings.ReplaceAll(c.profile.DailyURL, "{year}", strconv.Itoa(year))
	return c.fetch(ctx, url)
}

// MonthlyGeneration fetches and decodes monthly per-fuel-tech records.
func (c *Client) MonthlyGeneration(ctx context.Context) ([]domain.GenerationRecord, error) {
	set, err := c.FetchMonthly(ctx)
	if err != nil {
		return nil, err
	}
	return adapters.MapStatSetToGenerationRecords(set, adapters.IntervalMonthly)
}

// DailyGeneration fetches and decodes daily per-fuel-tech records for one
// calendar year.
func (c *Client) DailyGeneration(ctx context.Context, year int) ([]domain.GenerationRecord, error) {
	set, err := c.FetchDaily(ctx, year)
	if err != nil {
		return nil, err
	}
	return adapters.MapStatSetToGenerationRecords(set, adapters.IntervalDaily)
}

func (c *Client) fetch(ctx context.Context, url string) (api.StatSet, error) {
	logger := zerolog.Ctx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return api.StatSet{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return api.StatSet{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("feed request")

	if resp.StatusCode != http.StatusOK {
		return api.StatSet{}, &Error{StatusCode: resp.StatusCode, URL: url}
	}

	var set api.StatSet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return api.StatSet{}, fmt.Errorf("decode %s: %w", url, err)
	}

	logger.Info().
		Str("url", url).
		Int("series", len(set.Data)).
		Msg("feed fetched")

	return set, nil
}
