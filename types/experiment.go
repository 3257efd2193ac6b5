package types

import (
	"encoding/json"
	"fmt"
	"path"
	"strconv"

	"github.com/zeu5/golf-rl/util"
	"gonum.org/v1/gonum/stat"
)

type ExperimentConfig struct {
	// execution configuration
	CurrentRun int
	Episodes   int
	Horizon    int

	// record flags
	RecordTraces bool
	SavePath     string
}

// Experiment encapsulates the parameters to configure an agent and analyze
// the traces
type Experiment struct {
	Name        string
	policy      Policy
	environment Environment
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, policy Policy, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		policy:      policy,
		environment: environment,
	}
}

// ExperimentResult aggregates the traces of one run with summary statistics
// over the episodes.
type ExperimentResult struct {
	Name        string
	Traces      []*Trace
	MeanReturn  float64
	StdReturn   float64
	MeanLength  float64
	SuccessRate float64
}

func (e *Experiment) recordTrace(rConfig *ExperimentConfig, trace *Trace) {
	tracesFile := path.Join(rConfig.SavePath, "traces", e.Name+"_"+strconv.Itoa(rConfig.CurrentRun)+".jsonl")
	bs, err := json.Marshal(trace)
	if err != nil {
		panic(err)
	}
	util.AppendToFile(tracesFile, string(bs))
}

// Run the experiment for the configured number of episodes and summarize
// the resulting traces.
func (e *Experiment) Run(rConfig *ExperimentConfig) (*ExperimentResult, error) {
	agent := NewAgent(&AgentConfig{
		Episodes:    rConfig.Episodes,
		Horizon:     rConfig.Horizon,
		Policy:      e.policy,
		Environment: e.environment,
	})
	if err := agent.Run(); err != nil {
		return nil, fmt.Errorf("experiment %s: %w", e.Name, err)
	}
	traces := agent.Traces()

	if rConfig.RecordTraces {
		tracesFile := path.Join(rConfig.SavePath, "traces", e.Name+"_"+strconv.Itoa(rConfig.CurrentRun)+".jsonl")
		if err := util.EnsureDir(tracesFile); err != nil {
			return nil, err
		}
		for _, trace := range traces {
			e.recordTrace(rConfig, trace)
		}
	}

	returns := make([]float64, len(traces))
	lengths := make([]float64, len(traces))
	successes := 0
	for i, trace := range traces {
		returns[i] = trace.Return()
		lengths[i] = float64(trace.Len())
		if trace.Terminated() {
			successes++
		}
	}

	result := &ExperimentResult{
		Name:        e.Name,
		Traces:      traces,
		MeanReturn:  stat.Mean(returns, nil),
		StdReturn:   stat.StdDev(returns, nil),
		MeanLength:  stat.Mean(lengths, nil),
		SuccessRate: float64(successes) / float64(len(traces)),
	}

	fmt.Printf("Exp:%s, Eps:%d, Return:%.2f+/-%.2f, Len:%.1f, Holed:%.1f%%\n",
		e.Name, len(traces), result.MeanReturn, result.StdReturn, result.MeanLength, result.SuccessRate*100)

	return result, nil
}

type ComparisonConfig struct {
	Runs         int
	Episodes     int
	Horizon      int
	RecordTraces bool
	SavePath     string
}

// Comparison runs a set of experiments under identical budgets and feeds the
// per-experiment datasets to a comparator (typically a plotter).
type Comparison struct {
	config      *ComparisonConfig
	experiments []*Experiment
	analyzer    Analyzer
	comparator  Comparator
}

func NewComparison(config *ComparisonConfig, analyzer Analyzer, comparator Comparator) *Comparison {
	return &Comparison{
		config:      config,
		experiments: make([]*Experiment, 0),
		analyzer:    analyzer,
		comparator:  comparator,
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.experiments = append(c.experiments, e)
}

func (c *Comparison) Run() error {
	for run := 0; run < c.config.Runs; run++ {
		names := make([]string, 0, len(c.experiments))
		dataSets := make([]DataSet, 0, len(c.experiments))
		for _, e := range c.experiments {
			e.policy.Reset()
			result, err := e.Run(&ExperimentConfig{
				CurrentRun:   run,
				Episodes:     c.config.Episodes,
				Horizon:      c.config.Horizon,
				RecordTraces: c.config.RecordTraces,
				SavePath:     c.config.SavePath,
			})
			if err != nil {
				return err
			}
			names = append(names, e.Name)
			dataSets = append(dataSets, c.analyzer(e.Name, result.Traces))
		}
		c.comparator(run, names, dataSets)
	}
	return nil
}
