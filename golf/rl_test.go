package golf

import (
	"testing"
)

func testRLEnv(t *testing.T) *RLEnvironment {
	t.Helper()
	m := mustTerrainMap(t, DefaultCourse(), DefaultTerrainTable())
	model := NewClubModel()
	env := NewEnv(m, model, DefaultEnvConfig())
	return NewRLEnvironment(env, model, DefaultAngles())
}

func TestRLEnvironmentActionSet(t *testing.T) {
	rlEnv := testRLEnv(t)

	state, err := rlEnv.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	want := len(DefaultAngles()) * len(DefaultClubs())
	if got := len(state.Actions()); got != want {
		t.Errorf("action set size = %d, want %d", got, want)
	}

	seen := make(map[string]bool)
	for _, a := range state.Actions() {
		h := a.Hash()
		if seen[h] {
			t.Errorf("duplicate action hash %s", h)
		}
		seen[h] = true
	}
}

func TestRLEnvironmentStep(t *testing.T) {
	rlEnv := testRLEnv(t)

	state, err := rlEnv.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	shotState := state.(*ShotState)
	if shotState.Terrain != "FAIRWAY" {
		t.Errorf("start terrain = %s, want FAIRWAY", shotState.Terrain)
	}

	next, reward, _, err := rlEnv.Step(&Shot{AngleDeg: 0, Club: 0})
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if next.Hash() == "" {
		t.Error("empty state hash")
	}
	if reward > 0 {
		t.Errorf("reward = %f, rewards are penalties", reward)
	}
}
