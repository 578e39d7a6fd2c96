package sim

import (
	"math"
	"math/rand"
	"sort"
	"testing"
	"time"
)

type cueLog []Cue

func (l *cueLog) Play(c Cue) { *l = append(*l, c) }

func (l cueLog) count(c Cue) int {
	n := 0
	for _, got := range l {
		if got == c {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T) (*Game, *cueLog) {
	t.Helper()
	cues := &cueLog{}
	return New(DefaultRules(), rand.New(rand.NewSource(1)), cues), cues
}

func offset(g *Game, dx, dy float64) Vec2 {
	return Vec2{X: g.Player.Pos.X + dx, Y: g.Player.Pos.Y + dy}
}

func TestNewStartsAtDefaults(t *testing.T) {
	g, _ := newTestGame(t)
	p := g.Player
	if p.Pos.X != 600 || p.Pos.Y != 400 {
		t.Fatalf("player at (%v, %v), want screen center", p.Pos.X, p.Pos.Y)
	}
	if p.HP != 5 || p.Speed != 5 || p.BulletCount != 1 || p.Shield {
		t.Fatalf("unexpected starting player %+v", p)
	}
	if p.Facing.X != 0 || p.Facing.Y != -1 {
		t.Fatalf("facing = %+v, want up", p.Facing)
	}
	if g.Remaining != 180 {
		t.Fatalf("remaining = %d, want 180", g.Remaining)
	}
	if len(g.Tiles) != 9 {
		t.Fatalf("tiles = %d, want 9", len(g.Tiles))
	}
}

func TestEnemyContact(t *testing.T) {
	tests := []struct {
		name       string
		shield     bool
		wantHP     int
		wantShield bool
		wantCue    Cue
	}{
		{"unshielded", false, 4, false, CuePlayerHurt},
		{"shielded", true, 5, false, CueShieldDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, cues := newTestGame(t)
			g.Player.Shield = tt.shield
			g.AddEnemy(EnemyBasic, offset(g, 30, 0), 0)

			g.Update(Input{})

			if g.Player.HP != tt.wantHP {
				t.Fatalf("HP = %d, want %d", g.Player.HP, tt.wantHP)
			}
			if g.Player.Shield != tt.wantShield || g.Player.ShieldVisible != tt.wantShield {
				t.Fatalf("shield = %v visible = %v, want %v", g.Player.Shield, g.Player.ShieldVisible, tt.wantShield)
			}
			if len(g.Enemies) != 0 {
				t.Fatalf("enemies = %d, want contact to remove the enemy", len(g.Enemies))
			}
			if cues.count(tt.wantCue) != 1 {
				t.Fatalf("cues = %v, want one %v", *cues, tt.wantCue)
			}
		})
	}
}

func TestEnemyBulletHit(t *testing.T) {
	tests := []struct {
		name   string
		shield bool
		wantHP int
	}{
		{"unshielded", false, 4},
		{"shielded", true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.Player.Shield = tt.shield
			g.AddBullet(offset(g, -20, 0), Vec2{X: 1}, SideEnemy)

			g.Update(Input{})

			if g.Player.HP != tt.wantHP {
				t.Fatalf("HP = %d, want %d", g.Player.HP, tt.wantHP)
			}
			if g.Player.Shield {
				t.Fatal("shield should be spent or stay off")
			}
			if len(g.EnemyBullets) != 0 {
				t.Fatalf("enemy bullets = %d, want 0", len(g.EnemyBullets))
			}
		})
	}
}

func TestHPNeverBelowZero(t *testing.T) {
	g, _ := newTestGame(t)
	g.Player.HP = 1
	for i := 0; i < 3; i++ {
		g.AddEnemy(EnemyBasic, offset(g, float64(i*5), 10), 0)
	}
	if got := g.Update(Input{}); got != Lost {
		t.Fatalf("outcome = %v, want lost", got)
	}
	if g.Player.HP != 0 {
		t.Fatalf("HP = %d, want 0", g.Player.HP)
	}
}

func TestBossVolley(t *testing.T) {
	g, _ := newTestGame(t)
	boss := g.AddEnemy(EnemyBoss, Vec2{X: 100, Y: 100}, 0)
	boss.AttackCooldown = 1

	g.Update(Input{})

	if len(g.EnemyBullets) != 8 {
		t.Fatalf("enemy bullets = %d, want 8", len(g.EnemyBullets))
	}
	for i, b := range g.EnemyBullets {
		want := float64(i) * math.Pi / 4
		got := math.Atan2(b.Dir.Y, b.Dir.X)
		if got < 0 {
			got += 2 * math.Pi
		}
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("bullet %d angle = %v, want %v", i, got, want)
		}
		if b.Speed != 10 || b.Pos.X != 100 || b.Pos.Y != 100 {
			t.Fatalf("bullet %d = %+v, want speed 10 from the boss", i, b)
		}
	}
	if boss.AttackCooldown != 100 {
		t.Fatalf("attack cooldown = %d, want reset to 100", boss.AttackCooldown)
	}
}

func TestDasherImpulse(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.AddEnemy(EnemyDasher, Vec2{X: 100, Y: 400}, 2)
	e.DashCooldown = 1

	g.Update(Input{})

	if math.Abs(e.Pos.X-182) > 1e-9 || e.Pos.Y != 400 {
		t.Fatalf("dasher at (%v, %v), want (182, 400)", e.Pos.X, e.Pos.Y)
	}
	if e.DashCooldown != 200 {
		t.Fatalf("dash cooldown = %d, want 200", e.DashCooldown)
	}
}

func TestBasicEnemyNeverDashes(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.AddEnemy(EnemyBasic, Vec2{X: 100, Y: 400}, 2)
	for i := 0; i < 10; i++ {
		g.Update(Input{})
	}
	if math.Abs(e.Pos.X-120) > 1e-9 {
		t.Fatalf("basic enemy x = %v, want 120", e.Pos.X)
	}
}

func TestShotKillsOnceWithSingleDrop(t *testing.T) {
	g, _ := newTestGame(t)
	g.Rules.DropChance = 1
	g.AddEnemy(EnemyBasic, Vec2{X: 600, Y: 200}, 0)
	g.AddBullet(Vec2{X: 600, Y: 230}, Vec2{Y: -1}, SidePlayer)
	g.AddBullet(Vec2{X: 600, Y: 232}, Vec2{Y: -1}, SidePlayer)

	g.Update(Input{})

	if len(g.Enemies) != 0 {
		t.Fatalf("enemies = %d, want 0", len(g.Enemies))
	}
	if len(g.Bullets) != 0 {
		t.Fatalf("bullets = %d, want every overlapping bullet spent", len(g.Bullets))
	}
	if g.Stats.Kills != 1 || len(g.Items) != 1 || g.Stats.ItemsDropped != 1 {
		t.Fatalf("kills = %d items = %d, want one kill and one drop", g.Stats.Kills, len(g.Items))
	}
	if g.Items[0].Pos.X != 600 || g.Items[0].Pos.Y != 200 {
		t.Fatalf("item at %+v, want the enemy's position", g.Items[0].Pos)
	}
}

func TestFanVolleySpentOnOneEnemy(t *testing.T) {
	g, _ := newTestGame(t)
	g.Rules.DropChance = 1
	g.AddEnemy(EnemyBasic, Vec2{X: 600, Y: 200}, 0)
	behind := g.AddEnemy(EnemyBasic, Vec2{X: 600, Y: 140}, 0)
	for _, x := range []float64{590, 600, 610} {
		g.AddBullet(Vec2{X: x, Y: 230}, Vec2{Y: -1}, SidePlayer)
	}

	g.Update(Input{})

	if len(g.Bullets) != 0 {
		t.Fatalf("bullets = %d, want 0", len(g.Bullets))
	}
	if len(g.Enemies) != 1 || g.Enemies[0] != behind {
		t.Fatalf("enemies = %d, want only the one behind to survive", len(g.Enemies))
	}
	if g.Stats.Kills != 1 || g.Stats.ItemsDropped != 1 {
		t.Fatalf("kills = %d drops = %d, want 1 and 1", g.Stats.Kills, g.Stats.ItemsDropped)
	}
}

func TestShotOnContactKilledEnemyIsSpentWithoutDrop(t *testing.T) {
	g, _ := newTestGame(t)
	g.Rules.DropChance = 1
	g.AddEnemy(EnemyBasic, offset(g, 0, -30), 0)
	g.AddBullet(offset(g, 0, -45), Vec2{Y: -1}, SidePlayer)

	g.Update(Input{})

	if g.Player.HP != 4 || len(g.Enemies) != 0 {
		t.Fatalf("hp = %d enemies = %d, want 4 and 0", g.Player.HP, len(g.Enemies))
	}
	if len(g.Bullets) != 0 {
		t.Fatalf("bullets = %d, want the overlapping bullet spent", len(g.Bullets))
	}
	if g.Stats.Kills != 0 || len(g.Items) != 0 {
		t.Fatalf("kills = %d items = %d, want no shot kill and no drop", g.Stats.Kills, len(g.Items))
	}
}

func TestBossSurvivesSingleShot(t *testing.T) {
	g, _ := newTestGame(t)
	boss := g.AddEnemy(EnemyBoss, Vec2{X: 600, Y: 200}, 0)
	g.AddBullet(Vec2{X: 600, Y: 230}, Vec2{Y: -1}, SidePlayer)

	g.Update(Input{})

	if boss.HP != 9 || len(g.Enemies) != 1 {
		t.Fatalf("boss HP = %d enemies = %d, want 9 and 1", boss.HP, len(g.Enemies))
	}
	if len(g.Bullets) != 0 {
		t.Fatal("bullet should be consumed")
	}
}

func TestPickups(t *testing.T) {
	tests := []struct {
		name  string
		kind  ItemKind
		setup func(*Player)
		check func(*testing.T, Player)
		cues  []Cue
	}{
		{
			name:  "heal",
			kind:  ItemHeal,
			setup: func(p *Player) { p.HP = 3 },
			check: func(t *testing.T, p Player) {
				if p.HP != 4 {
					t.Fatalf("HP = %d, want 4", p.HP)
				}
			},
			cues: []Cue{CueItemPickup},
		},
		{
			name:  "heal at cap",
			kind:  ItemHeal,
			setup: func(p *Player) {},
			check: func(t *testing.T, p Player) {
				if p.HP != 5 {
					t.Fatalf("HP = %d, want 5", p.HP)
				}
			},
			cues: []Cue{CueItemPickup},
		},
		{
			name:  "speed",
			kind:  ItemSpeed,
			setup: func(p *Player) {},
			check: func(t *testing.T, p Player) {
				if p.Speed != 6 {
					t.Fatalf("speed = %v, want 6", p.Speed)
				}
			},
			cues: []Cue{CueItemPickup},
		},
		{
			name:  "speed at cap",
			kind:  ItemSpeed,
			setup: func(p *Player) { p.Speed = 12 },
			check: func(t *testing.T, p Player) {
				if p.Speed != 12 {
					t.Fatalf("speed = %v, want 12", p.Speed)
				}
			},
			cues: []Cue{CueItemPickup},
		},
		{
			name:  "power at cap",
			kind:  ItemPower,
			setup: func(p *Player) { p.BulletCount = 3 },
			check: func(t *testing.T, p Player) {
				if p.BulletCount != 3 {
					t.Fatalf("bullet count = %d, want 3", p.BulletCount)
				}
			},
			cues: []Cue{CueItemPickup},
		},
		{
			name:  "shield",
			kind:  ItemShield,
			setup: func(p *Player) {},
			check: func(t *testing.T, p Player) {
				if !p.Shield || !p.ShieldVisible {
					t.Fatal("shield should be up and visible")
				}
			},
			cues: []Cue{CueShieldUp, CueItemPickup},
		},
		{
			name:  "shield already up",
			kind:  ItemShield,
			setup: func(p *Player) { p.Shield = true },
			check: func(t *testing.T, p Player) {
				if !p.Shield {
					t.Fatal("shield should stay up")
				}
			},
			cues: []Cue{CueItemPickup},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, cues := newTestGame(t)
			tt.setup(&g.Player)
			g.AddItem(tt.kind, offset(g, 10, 10))

			g.Update(Input{})

			if len(g.Items) != 0 {
				t.Fatal("pickup should remove the item")
			}
			tt.check(t, g.Player)
			if len(*cues) != len(tt.cues) {
				t.Fatalf("cues = %v, want %v", *cues, tt.cues)
			}
			for i := range tt.cues {
				if (*cues)[i] != tt.cues[i] {
					t.Fatalf("cues = %v, want %v", *cues, tt.cues)
				}
			}
		})
	}
}

func TestDropRate(t *testing.T) {
	g, _ := newTestGame(t)
	const n = 20000
	drops := 0
	for i := 0; i < n; i++ {
		if g.rollDrop(Vec2{X: 100, Y: 100}) {
			drops++
		}
	}
	rate := float64(drops) / n
	if math.Abs(rate-0.3) > 0.02 {
		t.Fatalf("drop rate = %v, want 0.3 ± 0.02", rate)
	}
	seen := map[ItemKind]bool{}
	for _, it := range g.Items {
		seen[it.Kind] = true
	}
	if len(seen) != len(ItemKinds) {
		t.Fatalf("dropped kinds = %v, want all four", seen)
	}
}

func TestFireFan(t *testing.T) {
	g, cues := newTestGame(t)
	g.Player.BulletCount = 3
	g.Fire()

	if len(g.Bullets) != 3 {
		t.Fatalf("bullets = %d, want 3", len(g.Bullets))
	}
	wantX := []float64{590, 600, 610}
	for i, b := range g.Bullets {
		if b.Pos.X != wantX[i] || b.Pos.Y != 400 {
			t.Fatalf("bullet %d at %+v, want x %v", i, b.Pos, wantX[i])
		}
		if b.Dir.X != 0 || b.Dir.Y != -1 || b.Speed != 15 {
			t.Fatalf("bullet %d heading %+v speed %v, want up at 15", i, b.Dir, b.Speed)
		}
	}
	if len(*cues) != 1 || (*cues)[0] != CueFire {
		t.Fatalf("cues = %v, want a single fire cue", *cues)
	}
}

func TestFireDiagonalIsUnitLength(t *testing.T) {
	g, _ := newTestGame(t)
	g.Update(Input{Down: true, Right: true})
	g.Fire()
	b := g.Bullets[0]
	if math.Abs(math.Hypot(b.Dir.X, b.Dir.Y)-1) > 1e-9 {
		t.Fatalf("direction %+v is not unit length", b.Dir)
	}
}

func TestBulletsLeavingScreenAreRemoved(t *testing.T) {
	g, _ := newTestGame(t)
	g.AddBullet(Vec2{X: 600, Y: 10}, Vec2{Y: -1}, SidePlayer)
	g.AddBullet(Vec2{X: 1195, Y: 700}, Vec2{X: 1}, SideEnemy)

	g.Update(Input{})

	if len(g.Bullets) != 0 || len(g.EnemyBullets) != 0 {
		t.Fatalf("bullets = %d enemy bullets = %d, want none", len(g.Bullets), len(g.EnemyBullets))
	}
}

func TestScroll(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		dx, dy float64
	}{
		{"right", Input{Right: true}, -5, 0},
		{"down beats up", Input{Up: true, Down: true}, 0, -5},
		{"right beats left", Input{Left: true, Right: true}, -5, 0},
		{"up left", Input{Up: true, Left: true}, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			e := g.AddEnemy(EnemyBasic, Vec2{X: 100, Y: 100}, 0)
			it := g.AddItem(ItemHeal, Vec2{X: 100, Y: 700})

			g.Update(tt.in)

			if e.Pos.X != 100+tt.dx || e.Pos.Y != 100+tt.dy {
				t.Fatalf("enemy at %+v, want shift (%v, %v)", e.Pos, tt.dx, tt.dy)
			}
			if it.Pos.X != 100+tt.dx || it.Pos.Y != 700+tt.dy {
				t.Fatalf("item at %+v, want shift (%v, %v)", it.Pos, tt.dx, tt.dy)
			}
			if g.Player.Facing.X != -tt.dx/5 || g.Player.Facing.Y != -tt.dy/5 {
				t.Fatalf("facing = %+v", g.Player.Facing)
			}
		})
	}
}

// rowsCover reports whether tiles of size tile centered at vals cover [0, extent].
func rowsCover(vals []float64, tile, extent float64) bool {
	seen := map[float64]bool{}
	var rows []float64
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			rows = append(rows, v)
		}
	}
	sort.Float64s(rows)
	if rows[0]-tile/2 > 0 || rows[len(rows)-1]+tile/2 < extent {
		return false
	}
	for i := 1; i < len(rows); i++ {
		if rows[i]-rows[i-1] > tile+1e-9 {
			return false
		}
	}
	return true
}

func TestHoldUpKeepsBackgroundCovered(t *testing.T) {
	g, _ := newTestGame(t)
	c := g.Rules.Center()
	th := g.Rules.TileHeight
	for tick := 0; tick < 100; tick++ {
		g.scroll(Input{Up: true})
		ys := make([]float64, 0, len(g.Tiles))
		for _, tile := range g.Tiles {
			if math.Abs(tile.Y-c.Y) > 1.5*th {
				t.Fatalf("tick %d: tile y %v left the window", tick, tile.Y)
			}
			ys = append(ys, tile.Y)
		}
		if !rowsCover(ys, th, g.Rules.Height) {
			t.Fatalf("tick %d: rows %v leave part of the screen bare", tick, ys)
		}
	}
}

func TestIdleKeepsFacing(t *testing.T) {
	g, _ := newTestGame(t)
	g.Update(Input{Left: true})
	g.Update(Input{})
	if g.Player.Facing.X != -1 || g.Player.Facing.Y != 0 {
		t.Fatalf("facing = %+v, want last nonzero input", g.Player.Facing)
	}
}

func TestAnimationEveryThirdTick(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < 4; i++ {
		g.Update(Input{})
	}
	if g.Player.Frame != 2 {
		t.Fatalf("frame = %d after 4 ticks, want 2", g.Player.Frame)
	}
}

func TestWinAtTimeUp(t *testing.T) {
	g, cues := newTestGame(t)
	g.Ticks = 5999
	if got := g.Update(Input{}); got != Running {
		t.Fatalf("outcome = %v with a second left, want running", got)
	}
	if got := g.Update(Input{}); got != Won {
		t.Fatalf("outcome = %v, want won", got)
	}
	if g.Remaining != 0 || cues.count(CueWin) != 1 {
		t.Fatalf("remaining = %d cues = %v", g.Remaining, *cues)
	}

	ticks := g.Ticks
	g.Fire()
	if got := g.Update(Input{Right: true}); got != Won {
		t.Fatalf("outcome after end = %v, want won", got)
	}
	if g.Ticks != ticks || len(g.Bullets) != 0 || cues.count(CueWin) != 1 {
		t.Fatal("updates after the end should change nothing")
	}
}

func TestRemainingCountsWholeSeconds(t *testing.T) {
	g, _ := newTestGame(t)
	g.Ticks = 34 // 1.02 s
	g.Update(Input{})
	if g.Remaining != 179 {
		t.Fatalf("remaining = %d, want 179", g.Remaining)
	}
}

func TestSpawnCadence(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < 49; i++ {
		g.Update(Input{})
	}
	if len(g.Enemies) != 0 {
		t.Fatalf("enemies = %d before the first interval", len(g.Enemies))
	}
	g.Update(Input{})
	if len(g.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1 on tick 50", len(g.Enemies))
	}
	e := g.Enemies[0]
	d := math.Hypot(e.Pos.X-600, e.Pos.Y-400)
	if math.Abs(d-650) > 1e-6 {
		t.Fatalf("spawn distance = %v, want 650", d)
	}
	if e.Kind != EnemyBasic || e.Speed != 2 || e.HP != 1 {
		t.Fatalf("spawned %+v, want a slow basic enemy", e)
	}
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		remaining int
		want      int
	}{
		{180, 50}, {121, 50}, {120, 35}, {61, 35}, {60, 15}, {0, 15},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tt.remaining); got != tt.want {
			t.Fatalf("SpawnInterval(%d) = %d, want %d", tt.remaining, got, tt.want)
		}
	}
}

func TestSpawnSpeed(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 2}, {59 * time.Second, 2}, {60 * time.Second, 3}, {119 * time.Second, 3}, {120 * time.Second, 4},
	}
	for _, tt := range tests {
		if got := SpawnSpeed(tt.elapsed); got != tt.want {
			t.Fatalf("SpawnSpeed(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestChooseKindBands(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	if got := ChooseKind(0, rng); got != EnemyBasic {
		t.Fatalf("kind at 0s = %v, want basic", got)
	}

	counts := map[EnemyKind]int{}
	for i := 0; i < 10000; i++ {
		counts[ChooseKind(30*time.Second, rng)]++
	}
	if counts[EnemyBoss] != 0 {
		t.Fatal("no bosses before 60s")
	}
	if r := float64(counts[EnemyDasher]) / 10000; math.Abs(r-0.3) > 0.03 {
		t.Fatalf("dasher share = %v, want about 0.3", r)
	}

	counts = map[EnemyKind]int{}
	for i := 0; i < 10000; i++ {
		counts[ChooseKind(90*time.Second, rng)]++
	}
	if r := float64(counts[EnemyBoss]) / 10000; math.Abs(r-0.1) > 0.02 {
		t.Fatalf("boss share = %v, want about 0.1", r)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() *Game {
		g := New(DefaultRules(), rand.New(rand.NewSource(42)), nil)
		for i := 0; i < 900; i++ {
			if i%10 == 0 {
				g.Fire()
			}
			g.Update(Input{Left: i%200 < 100, Down: i%300 < 50})
		}
		return g
	}
	a, b := run(), run()
	if len(a.Enemies) != len(b.Enemies) || a.Stats != b.Stats || a.Player.HP != b.Player.HP {
		t.Fatalf("runs diverged: %+v vs %+v", a.Stats, b.Stats)
	}
	for i := range a.Enemies {
		if a.Enemies[i].Pos != b.Enemies[i].Pos {
			t.Fatalf("enemy %d diverged", i)
		}
	}
}
