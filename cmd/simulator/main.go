// Package main provides the Mega Millions simulator binary.
package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/megamillions/internal/config"
	"github.com/cory-johannsen/megamillions/internal/game/rng"
	"github.com/cory-johannsen/megamillions/internal/observability"
	"github.com/cory-johannsen/megamillions/internal/simulation"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty uses built-in defaults")
	seed := flag.Int64("seed", 0, "random seed for reproducible runs; 0 seeds from OS entropy")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var src rng.Source
	if *seed != 0 {
		src = rng.NewSeededSource(*seed)
	} else {
		src = rng.NewSimSource()
	}

	runner := simulation.NewRunner(cfg.Game, src, logger, os.Stdout)
	if err := runner.Run(); err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}
}
