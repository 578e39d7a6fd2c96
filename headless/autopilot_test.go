package headless

import (
	"math/rand"
	"testing"

	"github.com/automoto/survivor/shared/sim"
)

func TestAutopilotFleesNearbyEnemy(t *testing.T) {
	g := sim.New(sim.DefaultRules(), rand.New(rand.NewSource(1)), nil)
	g.AddEnemy(sim.EnemyBasic, sim.Vec2{X: g.Player.Pos.X + 100, Y: g.Player.Pos.Y}, 0)

	a := &Autopilot{SafeDistance: 200}
	cmd := a.Next(g)
	if !cmd.Input.Left || cmd.Input.Right || cmd.Input.Up || cmd.Input.Down {
		t.Fatalf("input = %+v, want to flee left", cmd.Input)
	}
	if cmd.Fire {
		t.Fatal("fire disabled but pilot fired")
	}
}

func TestAutopilotSeeksItem(t *testing.T) {
	g := sim.New(sim.DefaultRules(), rand.New(rand.NewSource(1)), nil)
	g.AddItem(sim.ItemHeal, sim.Vec2{X: g.Player.Pos.X, Y: g.Player.Pos.Y + 150})

	cmd := NewAutopilot(0).Next(g)
	if !cmd.Input.Down || cmd.Input.Left || cmd.Input.Right {
		t.Fatalf("input = %+v, want to walk down", cmd.Input)
	}
}

func TestAutopilotAimsThenFires(t *testing.T) {
	g := sim.New(sim.DefaultRules(), rand.New(rand.NewSource(1)), nil)
	g.AddEnemy(sim.EnemyBasic, sim.Vec2{X: g.Player.Pos.X, Y: g.Player.Pos.Y - 400}, 0)

	a := NewAutopilot(2)
	first := a.Next(g)
	if !first.Fire {
		t.Fatal("tick 0 should fire")
	}
	aim := a.Next(g)
	if aim.Fire || !aim.Input.Up {
		t.Fatalf("tick 1 = %+v, want to turn toward the enemy", aim)
	}
}

func TestAutopilotIdleWithoutTargets(t *testing.T) {
	g := sim.New(sim.DefaultRules(), rand.New(rand.NewSource(1)), nil)
	cmd := NewAutopilot(5).Next(g)
	if cmd != (Command{}) {
		t.Fatalf("command = %+v, want idle", cmd)
	}
}
