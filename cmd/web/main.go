package main

import (
	"fmt"
	"net"
	"os"

	"github.com/grid-tools/fuelmix/pkg/server"
	"github.com/grid-tools/fuelmix/pkg/services/config"
	"github.com/grid-tools/fuelmix/pkg/services/fueltech"
	"github.com/grid-tools/fuelmix/pkg/services/rolling"
	"github.com/grid-tools/fuelmix/pkg/services/share"
	"github.com/grid-tools/fuelmix/pkg/store/duckdb"
	"github.com/grid-tools/fuelmix/pkg/store/duckdb/energy"
	"github.com/grid-tools/fuelmix/pkg/store/feed"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	profilesPath string
	dbPath       string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the fuelmix web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", "networks.ini",
		"Path to the network profiles file")
	rootCmd.Flags().StringVar(&dbPath, "db", "fuelmix.db",
		"Path to the embedded cache database")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	profiles, err := config.NewRegistry(profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load network profiles: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	defer db.Close()

	energyStore, err := energy.NewStore(db)
	if err != nil {
		return err
	}

	registry := share.NewRegistry()
	all, err := profiles.GetProfiles(ctx)
	if err != nil {
		return err
	}
	for _, profile := range all {
		p := profile
		err := registry.Register(p.Name, func() (*share.Controller, error) {
			provider := share.NewCachedProvider(p.Code, feed.NewClient(p), energyStore, false)
			classifier := fueltech.NewClassifier(fueltech.Settings{})
			engine := rolling.NewEngine(rolling.DefaultSettings())
			return share.NewController(p, provider, provider, classifier, engine), nil
		})
		if err != nil {
			return err
		}
		logger.Info().Str("network", p.Name).Str("code", p.Code).Msg("registered network")
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msg("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Registry: registry,
			Logger:   logger,
		},
	})

	return api.Start()
}
