package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/secondwind/planner/internal/loadgen"
	"github.com/secondwind/planner/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumRequests      = 10_000
	defaultWorkerMultiplier = 2
	defaultTimeout          = 30 * time.Second
	defaultRunTimeout       = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numRequests = flag.Int("requests", defaultNumRequests, "Number of analysis requests to generate and submit")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkerMultiplier, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &loadgen.Config{
		BaseURL:     *baseURL,
		NumRequests: *numRequests,
		Workers:     *workers,
		Timeout:     *timeout,
		Verbose:     *verbose,
	}

	if err := loadgen.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "load run failed", logger.Error(err))
		os.Exit(1)
	}
}
