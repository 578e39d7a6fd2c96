package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/automoto/survivor/headless"
	"github.com/automoto/survivor/shared/sim"
	"github.com/google/uuid"
)

func main() {
	runs := flag.Int("runs", 20, "Number of games to play")
	seed := flag.Int64("seed", 1, "Seed of the first run; run i uses seed+i")
	interval := flag.Duration("interval", 0, "Tick interval (0 = as fast as possible)")
	fireEvery := flag.Int("fire-every", 6, "Autopilot fires every N ticks (0 = never)")
	flag.Parse()

	if *runs < 1 {
		log.Fatalf("Invalid -runs %d: must be at least 1", *runs)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var (
		summary     headless.Summary
		interrupted atomic.Bool
	)
	for i := 0; i < *runs; i++ {
		id := uuid.New()
		g := sim.New(sim.DefaultRules(), rand.New(rand.NewSource(*seed+int64(i))), nil)
		loop := headless.NewLoop(g, headless.NewAutopilot(*fireEvery), *interval)

		done := make(chan struct{})
		go func() {
			select {
			case <-stop:
				log.Println("Interrupted, stopping after this run...")
				interrupted.Store(true)
				loop.Stop()
			case <-done:
			}
		}()

		start := time.Now()
		outcome := loop.Run()
		close(done)

		summary.Add(g)
		log.Printf("Run %s (seed %d): %s at %s, hp=%d kills=%d drops=%d picked=%d spawned=%d wall=%s",
			id, *seed+int64(i), outcome, g.Elapsed(), g.Player.HP, g.Stats.Kills,
			g.Stats.ItemsDropped, g.Stats.ItemsPicked, g.Stats.Spawned, time.Since(start).Round(time.Millisecond))

		if interrupted.Load() {
			break
		}
	}

	log.Printf("Summary: %s", summary)
}
