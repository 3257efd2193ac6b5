package policies

import (
	"github.com/zeu5/golf-rl/types"
	"golang.org/x/exp/rand"
)

// EpsilonGreedy is tabular Q learning with epsilon exploration: with
// probability epsilon a uniform random action, otherwise the current best
// known action.
type EpsilonGreedy struct {
	qTable   *QTable
	alpha    float64
	discount float64
	epsilon  float64
	rand     *rand.Rand
}

var _ types.Policy = &EpsilonGreedy{}

func NewEpsilonGreedy(alpha, discount, epsilon float64, seed uint64) *EpsilonGreedy {
	return &EpsilonGreedy{
		qTable:   NewQTable(),
		alpha:    alpha,
		discount: discount,
		epsilon:  epsilon,
		rand:     rand.New(rand.NewSource(seed)),
	}
}

func (e *EpsilonGreedy) Reset() {
	e.qTable = NewQTable()
}

func (e *EpsilonGreedy) UpdateIteration(_ int, _ *types.Trace) {

}

func (e *EpsilonGreedy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	if e.rand.Float64() < e.epsilon {
		i := e.rand.Intn(len(actions))
		return actions[i], true
	}

	actionsMap := make(map[string]types.Action)
	availableActions := make([]string, len(actions))
	for i, a := range actions {
		aHash := a.Hash()
		actionsMap[aHash] = a
		availableActions[i] = aHash
	}
	maxAction, _ := e.qTable.MaxAmong(state.Hash(), availableActions, 0)
	if maxAction == "" {
		return nil, false
	}
	return actionsMap[maxAction], true
}

func (e *EpsilonGreedy) Update(step int, state types.State, action types.Action, reward float64, nextState types.State) {
	stateHash := state.Hash()
	actionHash := action.Hash()

	cur := e.qTable.Get(stateHash, actionHash, 0)
	nextMax := 0.0
	nextActions := make([]string, 0)
	for _, a := range nextState.Actions() {
		nextActions = append(nextActions, a.Hash())
	}
	if len(nextActions) > 0 {
		_, nextMax = e.qTable.MaxAmong(nextState.Hash(), nextActions, 0)
	}

	e.qTable.Set(stateHash, actionHash, (1-e.alpha)*cur+e.alpha*(reward+e.discount*nextMax))
}
