package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/sampledata"
	"github.com/okian/scout/pkg/logger"
)

// Default configuration constants.
const (
	defaultPlayers  = 200
	defaultOthers   = 50
	defaultTopN     = 10
	defaultTimeout  = 30 * time.Second
	defaultDeadline = 5 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		position    = flag.String("position", "Defensa Central", "Position to generate players for")
		profile     = flag.String("profile", "", "Profile to rank with (default: first profile of the position)")
		players     = flag.Int("players", defaultPlayers, "Players of the position")
		others      = flag.Int("others", defaultOthers, "Players of other positions mixed in")
		seed        = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
		topN        = flag.Int("top", defaultTopN, "Number of ranked players to fetch")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile  = flag.String("output", "", "CSV file to write the sample to")
		upload      = flag.Bool("upload", true, "Upload the sample and verify the ranking")
		catalogFile = flag.String("catalog", "", "YAML catalog file (default: built-in catalog)")
		verbose     = flag.Bool("verbose", false, "Log every ranked player")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultDeadline)
	defer cancel()

	c := catalog.Default()
	if *catalogFile != "" {
		var err error
		if c, err = catalog.LoadFile(ctx, *catalogFile); err != nil {
			logger.Get().Error(ctx, "failed to load catalog", logger.Error(err))
			os.Exit(1)
		}
	}

	cfg := &sampledata.Config{
		BaseURL:    *baseURL,
		Position:   *position,
		Profile:    *profile,
		Players:    *players,
		Others:     *others,
		Seed:       *seed,
		TopN:       *topN,
		Timeout:    *timeout,
		OutputFile: *outputFile,
		Upload:     *upload,
		Logger:     logger.Named("scout-sample"),
	}

	if _, err := sampledata.Run(ctx, c, cfg); err != nil {
		logger.Get().Error(ctx, "sample run failed", logger.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic // cancel is called explicitly above
	}
}
