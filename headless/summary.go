package headless

import (
	"fmt"
	"time"

	"github.com/automoto/survivor/shared/sim"
)

// Summary aggregates finished runs.
type Summary struct {
	Runs     int
	Wins     int
	Losses   int
	Stopped  int
	Survived time.Duration
	Kills    int
	Drops    int
}

// Add folds one finished game into the totals.
func (s *Summary) Add(g *sim.Game) {
	s.Runs++
	switch g.Outcome {
	case sim.Won:
		s.Wins++
	case sim.Lost:
		s.Losses++
	default:
		s.Stopped++
	}
	s.Survived += g.Elapsed()
	s.Kills += g.Stats.Kills
	s.Drops += g.Stats.ItemsDropped
}

// MeanSurvival is the average simulated time per run.
func (s Summary) MeanSurvival() time.Duration {
	if s.Runs == 0 {
		return 0
	}
	return s.Survived / time.Duration(s.Runs)
}

// DropRate is the observed share of kills that left an item.
func (s Summary) DropRate() float64 {
	if s.Kills == 0 {
		return 0
	}
	return float64(s.Drops) / float64(s.Kills)
}

func (s Summary) String() string {
	return fmt.Sprintf("runs=%d wins=%d losses=%d stopped=%d mean_survival=%s kills=%d drops=%d drop_rate=%.3f",
		s.Runs, s.Wins, s.Losses, s.Stopped, s.MeanSurvival().Round(time.Millisecond), s.Kills, s.Drops, s.DropRate())
}
