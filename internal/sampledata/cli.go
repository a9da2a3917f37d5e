package sampledata

import "os"

// ShowHelp prints usage information for the sample tool.
func ShowHelp() {
	os.Stdout.WriteString(`Scout Sample Tool
=================

Generates a synthetic player export for a position with one planted best player,
and optionally checks that a running service ranks that player first with 10.00.

Usage:
  go run ./cmd/scout-sample [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -position string
        Position to generate players for (default "Defensa Central")
  -profile string
        Profile to rank with (default: first profile of the position)
  -players int
        Players of the position (default 200)
  -others int
        Players of other positions mixed in (default 50)
  -seed uint
        Random seed (default: current time)
  -top int
        Number of ranked players to fetch (default 10)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        CSV file to write the sample to
  -upload
        Upload the sample and verify the ranking (default true)
  -verbose
        Log every ranked player
  -help
        Show this help message

Examples:
  # Write a sample for strikers without contacting a service
  go run ./cmd/scout-sample -position Delantero -upload=false -output strikers.csv

  # Verify a running service with a fixed seed
  go run ./cmd/scout-sample -seed 42 -players 1000
`)
}
