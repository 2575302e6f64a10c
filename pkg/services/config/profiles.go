package config

import (
	"context"
	"fmt"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry resolves network feed profiles from an ini profiles file. Each
// section describes one network:
//
//	[nem]
//	code = NEM
//	country = au
//	source = nemweb
//	monthly_url = https://openelectricity.org.au/api/energy?region=_all
//	daily_url = https://data.openelectricity.org.au/v4/stats/au/NEM/energy/{year}.json
//	utc_offset_hours = 10
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.NetworkProfile, error)
	GetProfile(ctx context.Context, name string) (domain.NetworkProfile, error)
}

type profileRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &profileRegistry{cfg: cfg}, nil
}

func (pr *profileRegistry) GetProfiles(_ context.Context) ([]domain.NetworkProfile, error) {
	var profiles []domain.NetworkProfile
	for _, section := range pr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := mapSection(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (pr *profileRegistry) GetProfile(_ context.Context, name string) (domain.NetworkProfile, error) {
	section, err := pr.cfg.GetSection(name)
	if err != nil {
		return domain.NetworkProfile{}, fmt.Errorf("network profile %q not found", name)
	}
	return mapSection(section)
}

func mapSection(section *ini.Section) (domain.NetworkProfile, error) {
	profile := domain.NetworkProfile{
		Name:         section.Name(),
		Code:         section.Key("code").String(),
		Country:      section.Key("country").String(),
		Source:       section.Key("source").String(),
		MonthlyURL:   section.Key("monthly_url").String(),
		DailyURL:     section.Key("daily_url").String(),
		UTCOffsetHrs: section.Key("utc_offset_hours").MustInt(0),
	}
	if profile.Code == "" {
		return domain.NetworkProfile{}, fmt.Errorf("network profile %q has no code", profile.Name)
	}
	if profile.MonthlyURL == "" || profile.DailyURL == "" {
		return domain.NetworkProfile{}, fmt.Errorf("network profile %q has no feed URLs", profile.Name)
	}
	return profile, nil
}
