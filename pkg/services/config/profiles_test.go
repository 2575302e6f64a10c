package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "networks.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validProfiles = `
[nem]
code = NEM
country = au
source = OpenNEM
monthly_url = https://example.org/api/energy?region=_all
daily_url = https://example.org/v4/stats/au/NEM/energy/{year}.json
utc_offset_hours = 10

[wem]
code = WEM
country = au
source = OpenNEM
monthly_url = https://example.org/api/energy?region=wem
daily_url = https://example.org/v4/stats/au/WEM/energy/{year}.json
utc_offset_hours = 8
`

func TestProfileRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("get profile by name", func(t *testing.T) {
		registry, err := NewRegistry(writeProfiles(t, validProfiles))
		require.NoError(t, err)

		profile, err := registry.GetProfile(ctx, "nem")
		require.NoError(t, err)
		assert.Equal(t, "nem", profile.Name)
		assert.Equal(t, "NEM", profile.Code)
		assert.Equal(t, "au", profile.Country)
		assert.Equal(t, 10, profile.UTCOffsetHrs)
		assert.Contains(t, profile.DailyURL, "{year}")
	})

	t.Run("list all profiles", func(t *testing.T) {
		registry, err := NewRegistry(writeProfiles(t, validProfiles))
		require.NoError(t, err)

		profiles, err := registry.GetProfiles(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "NEM", profiles[0].Code)
		assert.Equal(t, "WEM", profiles[1].Code)
	})

	t.Run("utc offset defaults to zero", func(t *testing.T) {
		registry, err := NewRegistry(writeProfiles(t, `
[nem]
code = NEM
monthly_url = https://example.org/monthly
daily_url = https://example.org/daily/{year}
`))
		require.NoError(t, err)

		profile, err := registry.GetProfile(ctx, "nem")
		require.NoError(t, err)
		assert.Equal(t, 0, profile.UTCOffsetHrs)
	})

	t.Run("error - unknown profile", func(t *testing.T) {
		registry, err := NewRegistry(writeProfiles(t, validProfiles))
		require.NoError(t, err)

		_, err = registry.GetProfile(ctx, "ercot")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("error - missing code", func(t *testing.T) {
		registry, err := NewRegistry(writeProfiles(t, `
[nem]
monthly_url = https://example.org/monthly
daily_url = https://example.org/daily/{year}
`))
		require.NoError(t, err)

		_, err = registry.GetProfile(ctx, "nem")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no code")
	})

	t.Run("error - missing feed URLs", func(t *testing.T) {
		registry, err := NewRegistry(writeProfiles(t, `
[nem]
code = NEM
`))
		require.NoError(t, err)

		_, err = registry.GetProfile(ctx, "nem")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no feed URLs")
	})

	t.Run("error - file does not exist", func(t *testing.T) {
		_, err := NewRegistry(filepath.Join(t.TempDir(), "missing.ini"))
		assert.Error(t, err)
	})
}
