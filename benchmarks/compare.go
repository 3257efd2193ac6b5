package benchmarks

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/golf-rl/types"
)

func Compare(episodes, horizon int, saveFile string, runs int) error {
	c := types.NewComparison(&types.ComparisonConfig{
		Runs:     runs,
		Episodes: episodes,
		Horizon:  horizon,
		SavePath: saveFile,
	}, types.ReturnCurve(), types.ReturnCurvePlotter(saveFile))

	// each experiment gets its own environment so the dispersion streams
	// start from the same seed
	for _, name := range []string{"heuristic", "random", "qlearning"} {
		rlEnv, model, err := newCourseEnv(false)
		if err != nil {
			return err
		}
		policy, err := coursePolicy(name, model)
		if err != nil {
			return err
		}
		c.AddExperiment(types.NewExperiment(name, policy, rlEnv))
	}

	return c.Run()
}

func CompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "compare",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Compare(episodes, horizon, saveFile, runs)
		},
	}
	return cmd
}
