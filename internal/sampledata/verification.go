package sampledata

import (
	"errors"
	"fmt"
)

// Verify checks a ranking of s: ranks run 1..n, scores stay within [0, 10] and never
// increase, and the planted best player leads with 10.
func Verify(s *Sample, r *Ranking) error {
	if r.NoPlayers || len(r.Players) == 0 {
		return errors.New("ranking has no players")
	}
	if r.Profile != s.Profile {
		return fmt.Errorf("ranked with profile %q, sample is for %q", r.Profile, s.Profile)
	}
	for i, p := range r.Players {
		if p.Rank != i+1 {
			return fmt.Errorf("entry %d has rank %d", i, p.Rank)
		}
		if p.Score < 0 || p.Score > 10 {
			return fmt.Errorf("%s scored %.2f, outside [0, 10]", p.Name, p.Score)
		}
		if i > 0 && p.Score > r.Players[i-1].Score {
			return fmt.Errorf("ranking not sorted: %s (%.2f) after %s (%.2f)",
				p.Name, p.Score, r.Players[i-1].Name, r.Players[i-1].Score)
		}
	}
	top := r.Players[0]
	if top.Name != s.Best {
		return fmt.Errorf("top player is %s, expected %s", top.Name, s.Best)
	}
	if top.Score != 10 {
		return fmt.Errorf("top player scored %.2f, expected 10.00", top.Score)
	}
	return nil
}
