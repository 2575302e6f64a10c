package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/grid-tools/fuelmix/pkg/adapters"
	"github.com/grid-tools/fuelmix/pkg/export"
	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/grid-tools/fuelmix/pkg/models/store"
	"github.com/grid-tools/fuelmix/pkg/services/config"
	"github.com/grid-tools/fuelmix/pkg/services/fueltech"
	"github.com/grid-tools/fuelmix/pkg/services/rolling"
	"github.com/grid-tools/fuelmix/pkg/services/share"
	"github.com/grid-tools/fuelmix/pkg/store/duckdb"
	"github.com/grid-tools/fuelmix/pkg/store/duckdb/energy"
	"github.com/grid-tools/fuelmix/pkg/store/feed"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ComputeCmd struct {
	profilesPath string
	settingsPath string
	network      string
	asOf         string
	outputDir    string
	dbPath       string
	offline      bool
	strict       bool
	raw          bool
	reporter     *export.Reporter
}

func NewComputeCmd(reporter *export.Reporter) *cobra.Command {
	cc := &ComputeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute rolling generation shares for a network",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilesPath, "profiles", "networks.ini", "Path to the network profiles file")
	cmd.Flags().StringVar(&cc.settingsPath, "settings", "", "Path to the optional engine settings file")
	cmd.Flags().StringVar(&cc.network, "network", "", "Network profile to compute (e.g. nem)")
	cmd.Flags().StringVar(&cc.asOf, "as-of", "", "Reference date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&cc.outputDir, "output", "output", "Output directory")
	cmd.Flags().StringVar(&cc.dbPath, "db", "fuelmix.db", "Path to the embedded cache database")
	cmd.Flags().BoolVar(&cc.offline, "offline", false, "Serve feed data from the local cache only")
	cmd.Flags().BoolVar(&cc.strict, "strict", false, "Reject runs containing unmapped fuel technologies")
	cmd.Flags().BoolVar(&cc.raw, "raw", false, "Also snapshot the upstream monthly feed to raw.json")

	_ = cmd.MarkFlagRequired("network")

	return cmd
}

func (cc *ComputeCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	asOf := domain.DateOf(time.Now())
	if cc.asOf != "" {
		parsed, err := domain.ParseDate(cc.asOf)
		if err != nil {
			return err
		}
		asOf = parsed
	}

	settings, err := config.LoadSettings(cc.settingsPath)
	if err != nil {
		return err
	}
	if cc.strict {
		settings.Strict = true
	}

	profiles, err := config.NewRegistry(cc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load network profiles: %w", err)
	}
	profile, err := profiles.GetProfile(ctx, cc.network)
	if err != nil {
		return err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cc.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	defer db.Close()

	energyStore, err := energy.NewStore(db)
	if err != nil {
		return err
	}

	if last, err := energyStore.LastRun(ctx, profile.Code); err == nil && last != nil {
		logger.Debug().
			Str("network", profile.Code).
			Time("as_of", last.AsOf).
			Int("months", last.Months).
			Msg("previous run")
	}

	ctrl, err := buildController(profile, energyStore, settings, cc.offline)
	if err != nil {
		return err
	}

	sink := export.NewFileSink(cc.outputDir)
	client := feed.NewClient(profile)
	if cc.raw && !cc.offline {
		set, err := client.FetchMonthly(ctx)
		if err != nil {
			return fmt.Errorf("failed to snapshot raw feed: %w", err)
		}
		if err := sink.WriteRaw(set); err != nil {
			return err
		}
	}

	series, err := ctrl.ComputeShares(ctx, asOf)
	if err != nil {
		return err
	}

	set, err := adapters.MapShareSeriesToStatSet(series, profile, time.Now())
	if err != nil {
		return err
	}
	if err := sink.WriteProcessed(set); err != nil {
		return err
	}

	if err := energyStore.LogRun(ctx, store.ShareRun{
		Network:   profile.Code,
		AsOf:      asOf.Time(),
		CreatedAt: time.Now(),
		Months:    len(series),
	}); err != nil {
		logger.Warn().Err(err).Msg("failed to log run")
	}

	return cc.reporter.Handle(series, profile)
}

func buildController(
	profile domain.NetworkProfile,
	energyStore energy.Store,
	settings config.Settings,
	offline bool,
) (*share.Controller, error) {
	overrides, err := settings.ClassificationOverrides()
	if err != nil {
		return nil, err
	}

	mapping := fueltech.DefaultClassification()
	for fuelTech, group := range overrides {
		mapping[fuelTech] = group
	}

	policy := fueltech.PolicyBucketOther
	if settings.Strict {
		policy = fueltech.PolicyStrict
	}
	classifier := fueltech.NewClassifier(fueltech.Settings{
		Mapping: mapping,
		Policy:  policy,
	})

	engine := rolling.NewEngine(rolling.Settings{
		Window:    settings.WindowMonths,
		Precision: settings.Precision,
	})

	provider := share.NewCachedProvider(profile.Code, feed.NewClient(profile), energyStore, offline)
	return share.NewController(profile, provider, provider, classifier, engine), nil
}
