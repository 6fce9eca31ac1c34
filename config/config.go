// Package config holds the solver's construction-time configuration:
// heuristic weights, the frontier's pruning ceiling, and a few resource
// knobs. Defaults come first, an optional YAML file may override them, and
// command-line flags win over both.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/namsral/flag"
	"gopkg.in/yaml.v3"
)

// Weights are the four heuristic constants described by the scoring
// formula: foundation progress helps, depth hurts, inversions hurt,
// ordered stacks help. If all four are zero every score is zero; the
// frontier's order among equal scores is not first-in-first-out.
type Weights struct {
	Greed    int // per-foundation-card reward
	Reward   int // per-ordered-pair reward
	Penalty  int // per-inversion penalty
	MoveCost int // per-depth penalty
}

// Config is the full set of construction-time parameters for a solve run.
type Config struct {
	Weights                Weights
	GCUpperBound           int
	EnableFoundationRescue bool
	MemoryFraction         float64
	LogLevel               string
	ConfigPath             string
}

// Default returns the recommended configuration: GREED=32, REWARD=4,
// PENALTY=64, MOVE_COST=8, a 1,200,000-entry frontier ceiling, foundation
// rescue enabled, and a modest slice of system RAM reserved for the
// visited set up front.
func Default() Config {
	return Config{
		Weights:                Weights{Greed: 32, Reward: 4, Penalty: 64, MoveCost: 8},
		GCUpperBound:           1200000,
		EnableFoundationRescue: true,
		MemoryFraction:         1.0 / 64,
		LogLevel:               "info",
	}
}

// Load parses args into a fresh Config, starting from Default, applying a
// YAML override file named by --config if present, then applying any
// explicit flags (which always win over the YAML file).
func (c *Config) Load(args []string) error {
	*c = Default()

	if path := scanConfigFlag(args); path != "" {
		if err := c.mergeYAML(path); err != nil {
			return err
		}
	}

	fs := flag.NewFlagSet("solver", flag.ContinueOnError)
	var noRescue bool
	fs.IntVar(&c.Weights.Greed, "greed", c.Weights.Greed, "heuristic weight: reward per foundation card placed")
	fs.IntVar(&c.Weights.Reward, "reward", c.Weights.Reward, "heuristic weight: reward per ordered cascade pair")
	fs.IntVar(&c.Weights.Penalty, "penalty", c.Weights.Penalty, "heuristic weight: penalty per cascade inversion")
	fs.IntVar(&c.Weights.MoveCost, "move-cost", c.Weights.MoveCost, "heuristic weight: penalty per move of depth")
	fs.IntVar(&c.GCUpperBound, "gc-upper-bound", c.GCUpperBound, "frontier pruning ceiling")
	fs.BoolVar(&noRescue, "no-foundation-rescue", false, "disable foundation-to-cascade rescue moves")
	fs.Float64Var(&c.MemoryFraction, "memory-fraction", c.MemoryFraction, "fraction of total system RAM to pre-size the visited set with")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "zerolog level: debug, info, warn, error")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML file overriding the defaults above")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if noRescue {
		c.EnableFoundationRescue = false
	}
	return nil
}

// scanConfigFlag finds the value of a --config/-config flag in args without
// fully parsing the flag set, so the YAML file it names can seed defaults
// before namsral/flag's real pass runs.
func scanConfigFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "-config" || a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}

// yamlOverrides mirrors Config but with pointer fields, so an absent key
// leaves the corresponding Config field untouched.
type yamlOverrides struct {
	Greed                  *int     `yaml:"greed"`
	Reward                 *int     `yaml:"reward"`
	Penalty                *int     `yaml:"penalty"`
	MoveCost               *int     `yaml:"move_cost"`
	GCUpperBound           *int     `yaml:"gc_upper_bound"`
	EnableFoundationRescue *bool    `yaml:"enable_foundation_rescue"`
	MemoryFraction         *float64 `yaml:"memory_fraction"`
	LogLevel               *string  `yaml:"log_level"`
}

func (c *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}
	var y yamlOverrides
	if err := yaml.Unmarshal(data, &y); err != nil {
		return fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if y.Greed != nil {
		c.Weights.Greed = *y.Greed
	}
	if y.Reward != nil {
		c.Weights.Reward = *y.Reward
	}
	if y.Penalty != nil {
		c.Weights.Penalty = *y.Penalty
	}
	if y.MoveCost != nil {
		c.Weights.MoveCost = *y.MoveCost
	}
	if y.GCUpperBound != nil {
		c.GCUpperBound = *y.GCUpperBound
	}
	if y.EnableFoundationRescue != nil {
		c.EnableFoundationRescue = *y.EnableFoundationRescue
	}
	if y.MemoryFraction != nil {
		c.MemoryFraction = *y.MemoryFraction
	}
	if y.LogLevel != nil {
		c.LogLevel = *y.LogLevel
	}
	c.ConfigPath = path
	return nil
}
