package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pythonzzgr/bazi-analysis/pkg/server"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/analysis"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/calendar"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/config"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the four pillars analysis web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the server config file (optional, defaults plus SERVER_* env apply)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	oracle := calendar.NewOracle()

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr(),
		AllowedOrigins:  cfg.AllowedOrigins,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Analyzer: analysis.NewAnalyzer(oracle),
			Oracle:   oracle,
		},
	})

	return api.Start()
}
