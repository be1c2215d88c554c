package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	bidding "property-bidding/internal/biddingService"
	"property-bidding/internal/clock"
	"property-bidding/internal/config"
	property "property-bidding/internal/propertyService"
	"property-bidding/internal/repository"
	"property-bidding/internal/repository/sqlite"
	"property-bidding/internal/server"
	"property-bidding/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	properties, bids, cleanup, err := openStores(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	clk := clock.RealClock{}
	biddingSvc := bidding.NewBiddingService(properties, bids, clk)
	propertySvc := property.NewPropertyService(properties)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper := bidding.NewSweeper(biddingSvc, properties, clk, cfg.SweepInterval)
	go sweeper.Run(ctx)

	router := server.SetupRouter(biddingSvc, propertySvc)

	fmt.Printf("Starting property bidding server on %s...\n", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStores picks the SQLite store when a database path is configured,
// otherwise the in-memory repository.
func openStores(cfg config.Config) (repository.PropertyStore, repository.BidStore, func(), error) {
	if cfg.DBPath == "" {
		repo := repository.NewMemoryRepo()
		return repo, repo, func() {}, nil
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}
	return store, store, func() { _ = store.Close() }, nil
}
