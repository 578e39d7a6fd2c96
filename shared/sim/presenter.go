package sim

//go:generate go tool mockgen -destination=./mocks/presenter_mock.go -package=mocks . Presenter

// Cue is a fire-and-forget presentation event raised by the simulation.
type Cue int

const (
	CueFire Cue = iota + 1
	CueItemPickup
	CueShieldUp
	CueShieldDown
	CuePlayerHurt
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueItemPickup:
		return "item"
	case CueShieldUp:
		return "shieldUp"
	case CueShieldDown:
		return "shieldDown"
	case CuePlayerHurt:
		return "hurt"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	}
	return "unknown"
}

// Presenter receives cues as they happen. Implementations must not call back
// into the Game.
type Presenter interface {
	Play(cue Cue)
}

// NopPresenter discards every cue.
type NopPresenter struct{}

func (NopPresenter) Play(Cue) {}

// PresenterFunc adapts a plain function to Presenter.
type PresenterFunc func(Cue)

func (f PresenterFunc) Play(c Cue) { f(c) }
