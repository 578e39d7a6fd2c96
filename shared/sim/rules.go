package sim

import "time"

// Rules holds the tuning of one survival run. Start from DefaultRules and
// override fields; the zero value is not playable.
type Rules struct {
	Width, Height float64

	PlayerSize float64
	BulletSize float64
	EnemySize  float64
	ItemSize   float64

	Tick         time.Duration
	SurvivalTime time.Duration

	PlayerSpeed    float64
	MaxPlayerSpeed float64
	PlayerHP       int
	MaxBulletCount int
	AnimateEvery   int // ticks per player animation frame

	PlayerBulletSpeed float64
	EnemyBulletSpeed  float64
	FanSpacing        float64

	DropChance float64

	// TileWidth and TileHeight size the scrolling background window. Three
	// tiles cover the screen only while each is at least half its extent.
	TileWidth, TileHeight float64

	Enemies map[EnemyKind]EnemyRules
}

// EnemyRules tunes one enemy kind. Cooldowns are in ticks; zero disables the move.
type EnemyRules struct {
	HP             int
	DashCooldown   int
	DashImpulse    float64
	AttackCooldown int
	VolleySize     int
}

// DefaultRules returns the arcade tuning.
func DefaultRules() Rules {
	return Rules{
		Width:  1200,
		Height: 800,

		PlayerSize: 50,
		BulletSize: 20,
		EnemySize:  50,
		ItemSize:   30,

		Tick:         30 * time.Millisecond,
		SurvivalTime: 180 * time.Second,

		PlayerSpeed:    5,
		MaxPlayerSpeed: 12,
		PlayerHP:       5,
		MaxBulletCount: 3,
		AnimateEvery:   3,

		PlayerBulletSpeed: 15,
		EnemyBulletSpeed:  10,
		FanSpacing:        10,

		DropChance: 0.3,

		TileWidth:  640,
		TileHeight: 640,

		Enemies: map[EnemyKind]EnemyRules{
			EnemyBasic:  {HP: 1},
			EnemyDasher: {HP: 1, DashCooldown: 200, DashImpulse: 80},
			EnemyBoss: {
				HP:             10,
				DashCooldown:   200,
				DashImpulse:    100,
				AttackCooldown: 100,
				VolleySize:     8,
			},
		},
	}
}

// Center is the player's fixed position.
func (r Rules) Center() Vec2 {
	return Vec2{X: r.Width / 2, Y: r.Height / 2}
}

// SurvivalSeconds is the run length in whole seconds.
func (r Rules) SurvivalSeconds() int {
	return int(r.SurvivalTime / time.Second)
}
