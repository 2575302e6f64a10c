package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const monthlyBody = `{
	"type": "energy_share",
	"version": "v4",
	"network": "NEM",
	"data": [
		{
			"id": "au.nem.fuel_tech.coal_black.energy",
			"type": "energy",
			"units": "GWh",
			"history": {
				"start": "2025-06",
				"last": "2025-07",
				"interval": "1M",
				"data": [100.5, null]
			}
		},
		{
			"id": "au.nem.fuel_tech.coal_black.emissions",
			"history": {"start": "2025-06", "interval": "1M", "data": [1]}
		}
	]
}`

func newTestClient(monthlyURL, dailyURL string) *Client {
	return NewClient(domain.NetworkProfile{
		Code:       "NEM",
		MonthlyURL: monthlyURL,
		DailyURL:   dailyURL,
	})
}

func TestClient_FetchMonthly(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			fmt.Fprint(w, monthlyBody)
		}))
		defer server.Close()

		set, err := newTestClient(server.URL, "").FetchMonthly(context.Background())
		require.NoError(t, err)
		require.Len(t, set.Data, 2)
		assert.Equal(t, "au.nem.fuel_tech.coal_black.energy", set.Data[0].ID)
		assert.Equal(t, "2025-06", set.Data[0].History.Start)
	})

	t.Run("error - upstream failure carries status and url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, "").FetchMonthly(context.Background())
		var feedErr *Error
		require.ErrorAs(t, err, &feedErr)
		assert.Equal(t, http.StatusBadGateway, feedErr.StatusCode)
		assert.Equal(t, server.URL, feedErr.URL)
	})

	t.Run("error - malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>not json</html>")
		}))
		defer server.Close()

		_, err := newTestClient(server.URL, "").FetchMonthly(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

func TestClient_FetchDaily(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		fmt.Fprint(w, `{"data": []}`)
	}))
	defer server.Close()

	_, err := newTestClient("", server.URL+"/nem/energy/daily/{year}.json").
		FetchDaily(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, "/nem/energy/daily/2024.json", requestedPath)
}

func TestClient_MonthlyGeneration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, monthlyBody)
	}))
	defer server.Close()

	records, err := newTestClient(server.URL, "").MonthlyGeneration(context.Background())
	require.NoError(t, err)

	// One energy series with one non-null value; the emissions series and
	// the null entry contribute nothing.
	require.Len(t, records, 1)
	assert.Equal(t, "coal_black", records[0].FuelTech)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), records[0].Time)
	assert.Equal(t, 100.5, records[0].Value)
}

func TestClient_DailyGeneration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"data": [{
				"id": "au.nem.fuel_tech.wind.energy",
				"history": {"start": "2024-08-01", "interval": "1D", "data": [5, 6]}
			}]
		}`)
	}))
	defer server.Close()

	records, err := newTestClient("", server.URL+"/{year}.json").
		DailyGeneration(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC), records[1].Time)
	assert.Equal(t, 6.0, records[1].Value)
}
