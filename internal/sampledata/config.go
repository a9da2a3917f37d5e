package sampledata

import (
	"time"

	"github.com/okian/scout/pkg/logger"
)

// Config holds configuration for a sample run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Position   string        // Position the sample is generated for
	Profile    string        // Profile to rank with; empty picks the position's first
	Players    int           // Players of the position, the planted best included
	Others     int           // Players of other positions mixed in
	Seed       uint64        // Random seed; equal seeds give equal samples
	TopN       int           // Number of players to fetch from the ranking
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // CSV file written with the sample; empty skips saving
	Upload     bool          // Upload the sample and verify the ranking
	Logger     logger.Logger // Defaults to the global logger
}

// Player is one generated dataset row.
type Player struct {
	Name     string
	Code     string
	Team     string
	Age      int
	Minutes  int
	Passport string
	Values   map[string]float64
}

// Sample is a generated dataset with the player planted to rank first.
type Sample struct {
	Position string
	Profile  string
	Metrics  []string
	Players  []Player
	Best     string
}

// Entry mirrors the scored player returned by the rankings endpoint.
type Entry struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Team  string  `json:"team"`
	Score float64 `json:"score"`
}

// Ranking mirrors the rankings response.
type Ranking struct {
	Profile   string  `json:"profile"`
	PoolSize  int     `json:"poolSize"`
	NoPlayers bool    `json:"noPlayers"`
	Players   []Entry `json:"players"`
}

// Stats holds run statistics.
type Stats struct {
	PlayersGenerated int
	RowsWritten      int
	DatasetID        string
	PoolSize         int
	PlayersRanked    int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
