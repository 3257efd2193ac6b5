package policies

import (
	"testing"

	"github.com/zeu5/golf-rl/golf"
	"github.com/zeu5/golf-rl/types"
)

func shotActions(model *golf.ClubModel) []types.Action {
	actions := make([]types.Action, 0)
	for _, angle := range golf.DefaultAngles() {
		for c := range model.Clubs {
			actions = append(actions, &golf.Shot{AngleDeg: angle, Club: c})
		}
	}
	return actions
}

func TestHeuristicPicksFittingClub(t *testing.T) {
	model := golf.NewClubModel()
	policy := NewHeuristic(model, 42)
	actions := shotActions(model)

	state := &golf.ShotState{Terrain: "FAIRWAY", Distance: 100}
	for i := 0; i < 50; i++ {
		action, ok := policy.NextAction(0, state, actions)
		if !ok {
			t.Fatal("no action returned")
		}
		shot := action.(*golf.Shot)
		if !model.Clubs[shot.Club].Fits(100) {
			t.Fatalf("picked club %s which does not fit distance 100", model.Clubs[shot.Club].Name)
		}
	}
}

func TestHeuristicFallsBackWhenNoClubFits(t *testing.T) {
	model := &golf.ClubModel{Clubs: []golf.Club{
		{Name: "DR", Carry: 210, DevX: 30, DevY: 12, MinUse: 180, MaxUse: 400},
	}}
	policy := NewHeuristic(model, 42)
	actions := shotActions(model)

	state := &golf.ShotState{Terrain: "GREEN", Distance: 5}
	if _, ok := policy.NextAction(0, state, actions); !ok {
		t.Fatal("expected a fallback action")
	}
}

func TestEpsilonGreedyExploits(t *testing.T) {
	policy := NewEpsilonGreedy(0.5, 1.0, 0, 42)
	model := golf.NewClubModel()
	actions := shotActions(model)
	state := &golf.ShotState{Terrain: "FAIRWAY", Distance: 100}
	next := &golf.ShotState{Terrain: "GREEN", Distance: 5}

	best := actions[3]
	policy.Update(0, state, best, 10, next)

	for i := 0; i < 10; i++ {
		action, ok := policy.NextAction(0, state, actions)
		if !ok {
			t.Fatal("no action returned")
		}
		if action.Hash() != best.Hash() {
			t.Fatalf("picked %s, want exploited %s", action.Hash(), best.Hash())
		}
	}
}
