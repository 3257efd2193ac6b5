package benchmarks

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
	"github.com/zeu5/golf-rl/golf"
	"github.com/zeu5/golf-rl/policies"
	"github.com/zeu5/golf-rl/types"
	"github.com/zeu5/golf-rl/util"
)

func newCourseEnv(debug bool) (*golf.RLEnvironment, *golf.ClubModel, error) {
	terrain, err := golf.NewTerrainMap(golf.DefaultCourse(), golf.DefaultTerrainTable())
	if err != nil {
		return nil, nil, err
	}
	model := golf.NewClubModel()
	config := golf.DefaultEnvConfig()
	config.Seed = seed
	config.Debug = debug
	env := golf.NewEnv(terrain, model, config)
	return golf.NewRLEnvironment(env, model, golf.DefaultAngles()), model, nil
}

func coursePolicy(name string, model *golf.ClubModel) (types.Policy, error) {
	switch name {
	case "heuristic":
		return policies.NewHeuristic(model, seed), nil
	case "random":
		return types.NewRandomPolicy(seed), nil
	case "softmax":
		return types.NewSoftMaxPolicy(0.3, 0.95), nil
	case "qlearning":
		return policies.NewEpsilonGreedy(0.3, 0.95, 0.1, seed), nil
	}
	return nil, fmt.Errorf("unknown policy %q", name)
}

func Course(episodes, horizon int, saveFile, policyName string, debug bool) error {
	rlEnv, model, err := newCourseEnv(debug)
	if err != nil {
		return err
	}
	policy, err := coursePolicy(policyName, model)
	if err != nil {
		return err
	}

	e := types.NewExperiment(policyName, policy, rlEnv)
	if _, err := e.Run(&types.ExperimentConfig{
		Episodes:     episodes,
		Horizon:      horizon,
		RecordTraces: true,
		SavePath:     saveFile,
	}); err != nil {
		return err
	}

	// trajectory of the last episode
	figPath := path.Join(saveFile, policyName+"_path.png")
	if err := util.EnsureDir(figPath); err != nil {
		return err
	}
	return golf.SavePathPlot(rlEnv.Env(), figPath)
}

func CourseCommand() *cobra.Command {
	var policyName string
	var debug bool

	cmd := &cobra.Command{
		Use: "course",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Course(episodes, horizon, saveFile, policyName, debug)
		},
	}
	cmd.PersistentFlags().StringVar(&policyName, "policy", "heuristic", "Policy to run (heuristic, random, softmax, qlearning)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print per-step landing info")
	return cmd
}
