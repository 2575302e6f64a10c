package config

import (
	"fmt"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/spf13/viper"
)

// Settings holds engine tunables loaded from an optional settings file.
type Settings struct {
	// WindowMonths is the trailing window length (default 12).
	WindowMonths int `mapstructure:"window_months"`
	// Precision is the decimal precision of output percentages (default 2).
	Precision int `mapstructure:"precision"`
	// Strict rejects runs containing unmapped fuel technologies instead of
	// bucketing them as "other".
	Strict bool `mapstructure:"strict"`
	// Classification overrides the default fuel-tech grouping, keyed by
	// fuel tech with values "fossil", "renewable" or "other".
	Classification map[string]string `mapstructure:"classification"`
}

func DefaultSettings() Settings {
	return Settings{
		WindowMonths: 12,
		Precision:    2,
	}
}

// LoadSettings reads the settings file at path. An empty path yields the
// defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("window_months", 12)
	v.SetDefault("precision", 2)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// ClassificationOverrides converts the string-valued classification map
// into fuel-tech groups, rejecting unknown group names.
func (s Settings) ClassificationOverrides() (map[string]domain.FuelTechGroup, error) {
	if len(s.Classification) == 0 {
		return nil, nil
	}
	out := make(map[string]domain.FuelTechGroup, len(s.Classification))
	for fuelTech, group := range s.Classification {
		switch domain.FuelTechGroup(group) {
		case domain.GroupFossil, domain.GroupRenewable, domain.GroupOther:
			out[fuelTech] = domain.FuelTechGroup(group)
		default:
			return nil, fmt.Errorf("unknown fuel tech group %q for %q", group, fuelTech)
		}
	}
	return out, nil
}
