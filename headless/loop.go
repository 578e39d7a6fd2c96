package headless

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/survivor/shared/sim"
)

// Command is one tick of pilot intent.
type Command struct {
	Input sim.Input
	Fire  bool
}

// Pilot decides what to press each tick.
type Pilot interface {
	Next(g *sim.Game) Command
}

// PilotFunc adapts a plain function to Pilot.
type PilotFunc func(g *sim.Game) Command

func (f PilotFunc) Next(g *sim.Game) Command { return f(g) }

// Loop drives a game without a window until it ends or is stopped.
type Loop struct {
	game     *sim.Game
	pilot    Pilot
	interval time.Duration
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop ticks game every interval. A zero interval runs as fast as possible.
func NewLoop(game *sim.Game, pilot Pilot, interval time.Duration) *Loop {
	return &Loop{
		game:     game,
		pilot:    pilot,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the game reaches an outcome or Stop is called, and returns
// the outcome at that point.
func (l *Loop) Run() sim.Outcome {
	l.running.Store(true)
	defer l.running.Store(false)

	if l.interval <= 0 {
		for !l.game.Over() {
			select {
			case <-l.stopChan:
				return l.game.Outcome
			default:
				l.tick()
			}
		}
		return l.game.Outcome
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			log.Println("Headless loop stopped")
			return l.game.Outcome
		case <-ticker.C:
			if l.tick() != sim.Running {
				return l.game.Outcome
			}
		}
	}
}

// Stop ends Run at the next tick boundary. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// Running reports whether Run is in progress.
func (l *Loop) Running() bool {
	return l.running.Load()
}

func (l *Loop) tick() sim.Outcome {
	cmd := l.pilot.Next(l.game)
	if cmd.Fire {
		l.game.Fire()
	}
	return l.game.Update(cmd.Input)
}
