package policies

import (
	"github.com/zeu5/golf-rl/golf"
	"github.com/zeu5/golf-rl/types"
	"golang.org/x/exp/rand"
)

// Heuristic aims roughly at the pin and picks a random club among those
// whose usable distance window covers the remaining distance. Falls back to
// a fully random shot when no club fits.
type Heuristic struct {
	clubs []golf.Club
	rand  *rand.Rand
}

var _ types.Policy = &Heuristic{}

func NewHeuristic(model *golf.ClubModel, seed uint64) *Heuristic {
	return &Heuristic{
		clubs: model.Clubs,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (h *Heuristic) Reset() {

}

func (h *Heuristic) UpdateIteration(_ int, _ *types.Trace) {

}

func (h *Heuristic) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	shotState, ok := state.(*golf.ShotState)
	if !ok {
		i := h.rand.Intn(len(actions))
		return actions[i], true
	}

	candidates := make([]types.Action, 0, len(actions))
	for _, a := range actions {
		shot, ok := a.(*golf.Shot)
		if !ok {
			continue
		}
		if h.clubs[shot.Club].Fits(shotState.Distance) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		candidates = actions
	}
	i := h.rand.Intn(len(candidates))
	return candidates[i], true
}

func (h *Heuristic) Update(_ int, _ types.State, _ types.Action, _ float64, _ types.State) {}
