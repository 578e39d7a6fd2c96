package sim

import (
	"math/rand"
	"time"
)

type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Input is the held-direction set sampled once per tick.
type Input struct {
	Up, Down, Left, Right bool
}

// Stats are running totals for the result screen and soak reports.
type Stats struct {
	Spawned      int
	Kills        int
	ShotsFired   int
	ItemsDropped int
	ItemsPicked  int
	DamageTaken  int
	ShieldBlocks int
}

// Game owns every entity of one run. It is not safe for concurrent use.
type Game struct {
	Rules Rules

	Player       Player
	Bullets      []*Bullet
	EnemyBullets []*Bullet
	Enemies      []*Enemy
	Items        []*Item
	Tiles        []Vec2

	// Ticks counts completed updates.
	Ticks     int
	Remaining int
	Outcome   Outcome
	Stats     Stats

	presenter Presenter
	rng       *rand.Rand
	bp        *broadphase
}

// New starts a run. A nil rng is seeded from the clock and a nil presenter
// discards cues.
func New(rules Rules, rng *rand.Rand, p Presenter) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p == nil {
		p = NopPresenter{}
	}
	g := &Game{
		Rules:     rules,
		Remaining: rules.SurvivalSeconds(),
		presenter: p,
		rng:       rng,
		bp:        newBroadphase(rules.Width, rules.Height),
	}
	g.Player = Player{
		Pos:         rules.Center(),
		Facing:      Vec2{X: 0, Y: -1},
		Speed:       rules.PlayerSpeed,
		HP:          rules.PlayerHP,
		BulletCount: 1,
	}
	g.Player.obj = g.bp.add(g.Player.Pos, rules.PlayerSize, &g.Player, tagPlayer)
	g.Tiles = g.tileWindow()
	return g
}

// Elapsed is the simulated time played so far.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.Ticks) * g.Rules.Tick
}

// Over reports whether the run has reached an outcome.
func (g *Game) Over() bool {
	return g.Outcome != Running
}

// Update advances the run by one tick. Once an outcome is reached further calls
// change nothing and return it again.
func (g *Game) Update(in Input) Outcome {
	if g.Over() {
		return g.Outcome
	}

	g.scroll(in)
	g.advanceBullets()
	syncBodies(g.bp, g.Bullets)
	syncBodies(g.bp, g.EnemyBullets)
	syncBodies(g.bp, g.Items)

	g.resolveEnemyBullets()
	g.Bullets = compact(g.bp, g.Bullets)
	g.EnemyBullets = compact(g.bp, g.EnemyBullets)

	g.advanceEnemies()
	syncBodies(g.bp, g.Enemies)

	g.resolveContacts()
	g.resolveShots()
	g.Enemies = compact(g.bp, g.Enemies)
	g.Bullets = compact(g.bp, g.Bullets)

	g.resolvePickups()
	g.Items = compact(g.bp, g.Items)

	g.Player.ShieldVisible = g.Player.Shield
	if g.Ticks%g.Rules.AnimateEvery == 0 {
		g.Player.Frame++
	}

	elapsed := g.Elapsed()
	g.Remaining = max(g.Rules.SurvivalSeconds()-int(elapsed/time.Second), 0)
	g.spawn(elapsed)

	switch {
	case g.Player.HP <= 0:
		g.Outcome = Lost
		g.presenter.Play(CueLose)
	case g.Remaining <= 0:
		g.Outcome = Won
		g.presenter.Play(CueWin)
	}
	return g.Outcome
}
