package types

// Environment of an episodic RL task. Reset starts a fresh episode, Step
// plays one action and reports the reward of the transition and whether the
// episode terminated. Errors are fatal to the episode and surface to the
// caller.
type Environment interface {
	Reset() (State, error)
	Step(Action) (State, float64, bool, error)
}

// State of the environment that RL policies observe
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Actions possible from the state
	Actions() []Action
}

// An Action that a RL policy can take
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}
