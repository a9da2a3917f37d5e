// Package sampledata generates synthetic player exports with a known best player and
// checks that a running service ranks them correctly.
package sampledata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/pkg/logger"
)

const directoryPermission = 0o750

// Run generates the sample, saves it, and when cfg.Upload is set uploads it, fetches the
// ranking and verifies it.
func Run(ctx context.Context, c *catalog.Catalog, cfg *Config) (*Stats, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "generating sample",
		logger.String("position", cfg.Position),
		logger.String("profile", cfg.Profile),
		logger.Int("players", cfg.Players),
		logger.Int("others", cfg.Others))

	sample, err := Generate(ctx, c, cfg)
	if err != nil {
		return nil, fmt.Errorf("sample generation failed: %w", err)
	}
	stats.PlayersGenerated = len(sample.Players)

	if cfg.OutputFile != "" {
		if err := saveSample(cfg.OutputFile, sample); err != nil {
			return nil, fmt.Errorf("saving sample failed: %w", err)
		}
		stats.RowsWritten = len(sample.Players)
		log.Info(ctx, "sample saved", logger.String("file", cfg.OutputFile))
	}

	if cfg.Upload {
		if err := uploadAndVerify(ctx, log, cfg, sample, stats); err != nil {
			return nil, err
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	log.Info(ctx, "final statistics",
		logger.Int("playersGenerated", stats.PlayersGenerated),
		logger.Int("rowsWritten", stats.RowsWritten),
		logger.Int("poolSize", stats.PoolSize),
		logger.Int("playersRanked", stats.PlayersRanked),
		logger.String("best", sample.Best),
		logger.Duration("duration", stats.Duration))
	return stats, nil
}

func uploadAndVerify(ctx context.Context, log logger.Logger, cfg *Config, s *Sample, stats *Stats) error {
	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	id, err := client.Upload(ctx, "sample.csv", s)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	stats.DatasetID = id
	defer func() {
		if err := client.Delete(context.Background(), id); err != nil {
			log.Warn(ctx, "failed to delete sample dataset", logger.String("dataset", id), logger.Error(err))
		}
	}()
	log.Info(ctx, "sample uploaded", logger.String("dataset", id))

	ranking, err := client.Ranking(ctx, id, s.Position, s.Profile, cfg.TopN)
	if err != nil {
		return fmt.Errorf("ranking retrieval failed: %w", err)
	}
	stats.PoolSize = ranking.PoolSize
	stats.PlayersRanked = len(ranking.Players)

	if err := Verify(s, ranking); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}
	for _, p := range ranking.Players {
		log.Debug(ctx, "ranked", logger.Int("rank", p.Rank), logger.String("name", p.Name), logger.Float64("score", p.Score))
	}
	log.Info(ctx, "ranking verified", logger.String("top", ranking.Players[0].Name))
	return nil
}

func saveSample(filename string, s *Sample) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.Create(filename) //nolint:gosec // operator supplied path
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := s.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
