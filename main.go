package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

func main() {
	config, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	g, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.Fatalf("failed to start: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx, os.Stdin); err != nil {
		log.Fatalf("game stopped: %+v", err)
	}

	stats := g.Stats()
	fmt.Printf("\nFinal stats: %d generations in %.1f seconds, %.1f avg population\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds(), stats.AveragePopulation)
}
