package sampledata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/dataset"
)

// Value ranges of generated statistics.
const (
	metricMin   = 1.0
	metricRange = 9.0
	bestMargin  = 1.0
	minAge      = 17
	ageRange    = 19
	minMinutes  = 300
	minutesSpan = 2700
)

var (
	teams     = []string{"Betis", "Sevilla", "Cádiz", "Málaga", "Getafe", "Elche", "Osasuna", "Girona"}
	passports = []string{"Spain", "Argentina", "Portugal", "France", "Brazil, Italy", "Uruguay"}
)

// Generate builds a sample for cfg.Position. Every profile metric gets a column; the
// planted best player beats the rest of the pool on every metric, lower being better
// for negative weights, so it must score 10.
func Generate(ctx context.Context, c *catalog.Catalog, cfg *Config) (*Sample, error) {
	pos, err := c.Position(cfg.Position)
	if err != nil {
		return nil, err
	}
	profile := cfg.Profile
	if profile == "" {
		offered, err := c.ProfilesFor(pos.Name)
		if err != nil {
			return nil, err
		}
		profile = offered[0]
	}
	specs, err := c.MetricsFor(profile)
	if err != nil {
		return nil, err
	}
	if cfg.Players < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", cfg.Players)
	}
	others := otherCodes(c, pos)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5c0a7))
	s := &Sample{
		Position: pos.Name,
		Profile:  profile,
		Metrics:  make([]string, 0, len(specs)),
	}
	for _, m := range specs {
		s.Metrics = append(s.Metrics, m.Name)
	}

	total := cfg.Players + cfg.Others
	best := rng.IntN(cfg.Players)
	for i := range total {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		p := Player{
			Name:     fmt.Sprintf("Jugador %03d", i+1),
			Team:     teams[rng.IntN(len(teams))],
			Age:      minAge + rng.IntN(ageRange),
			Minutes:  minMinutes + rng.IntN(minutesSpan),
			Passport: passports[rng.IntN(len(passports))],
			Values:   make(map[string]float64, len(specs)),
		}
		if i < cfg.Players {
			p.Code = pos.Codes[rng.IntN(len(pos.Codes))]
		} else {
			p.Code = others[rng.IntN(len(others))]
		}
		for _, m := range specs {
			p.Values[m.Name] = round2(metricMin + rng.Float64()*metricRange)
		}
		if i == best {
			p.Name = "Crack " + p.Name
			for _, m := range specs {
				if m.Negative() {
					p.Values[m.Name] = metricMin - bestMargin
				} else {
					p.Values[m.Name] = metricMin + metricRange + bestMargin
				}
			}
			s.Best = p.Name
		}
		s.Players = append(s.Players, p)
	}
	return s, nil
}

// WriteCSV writes the sample in the column layout of a scouting export.
func (s *Sample) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append([]string{
		dataset.ColumnPlayer, dataset.ColumnPosition, dataset.ColumnTeam,
		dataset.ColumnAge, dataset.ColumnMinutes, dataset.ColumnPassport,
	}, s.Metrics...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range s.Players {
		rec := []string{p.Name, p.Code, p.Team, strconv.Itoa(p.Age), strconv.Itoa(p.Minutes), p.Passport}
		for _, m := range s.Metrics {
			rec = append(rec, strconv.FormatFloat(p.Values[m], 'f', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// otherCodes returns codes of positions that never match pos, so mixed-in players stay
// out of its pool.
func otherCodes(c *catalog.Catalog, pos catalog.Position) []string {
	re := pos.Regexp()
	var out []string
	for _, p := range c.Positions() {
		for _, code := range p.Codes {
			if !re.MatchString(code) {
				out = append(out, code)
			}
		}
	}
	if len(out) == 0 {
		out = []string{"N/A"}
	}
	return out
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
