package components

import (
	"github.com/automoto/survivor/shared/sim"
	"github.com/yohamta/donburi"
)

// ResultData carries a finished run into the result scene.
type ResultData struct {
	Outcome  sim.Outcome
	Survived int // whole seconds
	Kills    int
	Picked   int
}

var Result = donburi.NewComponentType[ResultData]()
