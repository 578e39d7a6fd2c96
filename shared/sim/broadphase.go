package sim

import "github.com/solarlune/resolv"

const (
	tagPlayer       = "player"
	tagPlayerBullet = "playerBullet"
	tagEnemyBullet  = "enemyBullet"
	tagEnemy        = "enemy"
	tagItem         = "item"
)

const broadphaseCell = 64

// broadphaseMargin pads the space so bodies straddling the screen edge still
// share cells with whatever they touch.
const broadphaseMargin = 2 * broadphaseCell

// body is anything the collision passes track and compact.
type body interface {
	removed() bool
	object() *resolv.Object
	position() Vec2
}

// broadphase mirrors entity positions into a resolv space. Passes use it to
// narrow the candidates before the exact distance test.
type broadphase struct {
	space *resolv.Space
}

func newBroadphase(width, height float64) *broadphase {
	w := int(width) + 2*broadphaseMargin
	h := int(height) + 2*broadphaseMargin
	return &broadphase{space: resolv.NewSpace(w, h, broadphaseCell, broadphaseCell)}
}

func (b *broadphase) add(pos Vec2, size float64, data any, tag string) *resolv.Object {
	obj := resolv.NewObject(0, 0, size, size, tag)
	obj.Data = data
	b.place(obj, pos)
	b.space.Add(obj)
	return obj
}

func (b *broadphase) place(obj *resolv.Object, pos Vec2) {
	obj.X = pos.X - obj.W/2 + broadphaseMargin
	obj.Y = pos.Y - obj.H/2 + broadphaseMargin
}

func (b *broadphase) move(obj *resolv.Object, pos Vec2) {
	b.place(obj, pos)
	obj.Update()
}

func (b *broadphase) remove(obj *resolv.Object) {
	b.space.Remove(obj)
}

// near returns the set of tagged objects sharing a cell with obj.
func (b *broadphase) near(obj *resolv.Object, tag string) map[*resolv.Object]bool {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	found := make(map[*resolv.Object]bool, len(check.Objects))
	for _, o := range check.Objects {
		found[o] = true
	}
	return found
}

func syncBodies[E body](bp *broadphase, list []E) {
	for _, e := range list {
		bp.move(e.object(), e.position())
	}
}

// compact drops removed entities in place and unregisters them.
func compact[E body](bp *broadphase, list []E) []E {
	kept := list[:0]
	for _, e := range list {
		if e.removed() {
			bp.remove(e.object())
			continue
		}
		kept = append(kept, e)
	}
	clear(list[len(kept):])
	return kept
}
