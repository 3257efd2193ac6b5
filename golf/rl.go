package golf

import (
	"fmt"

	"github.com/zeu5/golf-rl/types"
)

// Shot is the discrete action of the RL wrapper: an aim offset in degrees
// relative to the pin heading and a club index into the club model.
type Shot struct {
	AngleDeg float64
	Club     int
}

var _ types.Action = &Shot{}

func (s *Shot) Hash() string {
	return fmt.Sprintf("a%+.0f/c%d", s.AngleDeg, s.Club)
}

// ShotState is the tabular view of an episode state for table-based
// policies: the current terrain name and the distance to the pin, hashed in
// 10 pixel buckets.
type ShotState struct {
	Terrain  string
	Distance float64
	actions  []types.Action
}

var _ types.State = &ShotState{}

func (s *ShotState) Hash() string {
	return fmt.Sprintf("%s/%d", s.Terrain, int(s.Distance/10))
}

func (s *ShotState) Actions() []types.Action {
	return s.actions
}

// DefaultAngles is the aim offset grid of the discrete action set.
func DefaultAngles() []float64 {
	return []float64{-45, -30, -15, 0, 15, 30, 45}
}

// RLEnvironment adapts Env to the generic environment interface with a fixed
// discrete action set, the cross product of angle bins and clubs. The
// wrapped Env must use the same club model as its flight model.
type RLEnvironment struct {
	env     *Env
	model   *ClubModel
	actions []types.Action
}

var _ types.Environment = &RLEnvironment{}

func NewRLEnvironment(env *Env, model *ClubModel, angles []float64) *RLEnvironment {
	actions := make([]types.Action, 0, len(angles)*len(model.Clubs))
	for _, a := range angles {
		for c := range model.Clubs {
			actions = append(actions, &Shot{AngleDeg: a, Club: c})
		}
	}
	return &RLEnvironment{
		env:     env,
		model:   model,
		actions: actions,
	}
}

func (r *RLEnvironment) Env() *Env { return r.env }

func (r *RLEnvironment) Reset() (types.State, error) {
	r.env.Reset()
	return r.shotState()
}

func (r *RLEnvironment) Step(a types.Action) (types.State, float64, bool, error) {
	shot, ok := a.(*Shot)
	if !ok {
		return nil, 0, false, fmt.Errorf("unexpected action type %T", a)
	}
	_, reward, terminated, err := r.env.Step(shot.AngleDeg, float64(shot.Club))
	if err != nil {
		return nil, 0, false, err
	}
	state, err := r.shotState()
	if err != nil {
		return nil, 0, false, err
	}
	return state, reward, terminated, nil
}

func (r *RLEnvironment) shotState() (types.State, error) {
	es := r.env.State()
	info, err := r.env.Map().Lookup(es.Code)
	if err != nil {
		return nil, err
	}
	return &ShotState{
		Terrain:  info.Name,
		Distance: es.DistanceToPin,
		actions:  r.actions,
	}, nil
}
