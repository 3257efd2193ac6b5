package types

import "encoding/json"

// Trace of an episode as (state, action, reward, nextState) quadruples.
type Trace struct {
	states     []State
	actions    []Action
	rewards    []float64
	nextStates []State
	terminated bool
}

func NewTrace() *Trace {
	return &Trace{
		states:     make([]State, 0),
		actions:    make([]Action, 0),
		rewards:    make([]float64, 0),
		nextStates: make([]State, 0),
	}
}

func (t *Trace) Append(step int, state State, action Action, reward float64, nextState State) {
	t.states = append(t.states, state)
	t.actions = append(t.actions, action)
	t.rewards = append(t.rewards, reward)
	t.nextStates = append(t.nextStates, nextState)
}

// MarkTerminated records that the episode ended on a terminal state rather
// than on the horizon.
func (t *Trace) MarkTerminated() {
	t.terminated = true
}

func (t *Trace) Terminated() bool {
	return t.terminated
}

func (t *Trace) Len() int {
	return len(t.states)
}

func (t *Trace) Get(i int) (State, Action, float64, State, bool) {
	if i >= len(t.states) {
		return nil, nil, 0, nil, false
	}
	return t.states[i], t.actions[i], t.rewards[i], t.nextStates[i], true
}

func (t *Trace) Last() (State, Action, float64, State, bool) {
	if len(t.states) < 1 {
		return nil, nil, 0, nil, false
	}
	i := len(t.states) - 1
	return t.states[i], t.actions[i], t.rewards[i], t.nextStates[i], true
}

// Return is the undiscounted sum of rewards of the episode.
func (t *Trace) Return() float64 {
	sum := 0.0
	for _, r := range t.rewards {
		sum += r
	}
	return sum
}

type traceStep struct {
	State  string  `json:"state"`
	Action string  `json:"action"`
	Reward float64 `json:"reward"`
	Next   string  `json:"next"`
}

func (t *Trace) MarshalJSON() ([]byte, error) {
	steps := make([]traceStep, len(t.states))
	for i := range t.states {
		steps[i] = traceStep{
			State:  t.states[i].Hash(),
			Action: t.actions[i].Hash(),
			Reward: t.rewards[i],
			Next:   t.nextStates[i].Hash(),
		}
	}
	return json.Marshal(struct {
		Terminated bool        `json:"terminated"`
		Steps      []traceStep `json:"steps"`
	}{t.terminated, steps})
}
