package sim

import (
	"github.com/solarlune/resolv"
	math2 "github.com/yohamta/donburi/features/math"
)

// Vec2 is a position or direction in screen space.
type Vec2 = math2.Vec2

type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

type EnemyKind int

const (
	EnemyBasic EnemyKind = iota + 1
	EnemyDasher
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyDasher:
		return "dasher"
	case EnemyBoss:
		return "boss"
	}
	return "unknown"
}

type ItemKind int

const (
	ItemHeal ItemKind = iota + 1
	ItemSpeed
	ItemPower
	ItemShield
)

// ItemKinds lists every droppable item in roll order.
var ItemKinds = []ItemKind{ItemHeal, ItemSpeed, ItemPower, ItemShield}

func (k ItemKind) String() string {
	switch k {
	case ItemHeal:
		return "heal"
	case ItemSpeed:
		return "speed"
	case ItemPower:
		return "power"
	case ItemShield:
		return "shield"
	}
	return "unknown"
}

// Player sits at the screen center; the world scrolls around it.
type Player struct {
	Pos         Vec2
	Facing      Vec2
	Speed       float64
	HP          int
	BulletCount int
	Shield      bool
	// ShieldVisible mirrors Shield once per tick for the companion sprite.
	ShieldVisible bool
	Frame         int

	obj *resolv.Object
}

type Bullet struct {
	Pos   Vec2
	Dir   Vec2
	Speed float64
	Side  Side

	obj  *resolv.Object
	dead bool
}

type Enemy struct {
	Pos            Vec2
	Speed          float64
	Kind           EnemyKind
	HP             int
	DashCooldown   int
	AttackCooldown int
	Frame          int

	obj  *resolv.Object
	dead bool
}

type Item struct {
	Pos  Vec2
	Kind ItemKind

	obj  *resolv.Object
	dead bool
}

func (b *Bullet) removed() bool          { return b.dead }
func (b *Bullet) object() *resolv.Object { return b.obj }
func (b *Bullet) position() Vec2         { return b.Pos }

func (e *Enemy) removed() bool          { return e.dead }
func (e *Enemy) object() *resolv.Object { return e.obj }
func (e *Enemy) position() Vec2         { return e.Pos }

func (i *Item) removed() bool          { return i.dead }
func (i *Item) object() *resolv.Object { return i.obj }
func (i *Item) position() Vec2         { return i.Pos }
