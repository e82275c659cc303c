// Package config provides the optional TOML overrides for the canonical
// pipeline runs.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/hsicurve/hsi"
)

// FileConfig represents the TOML configuration file. Top-level fields
// override aggregation constants for every run; per-run sections (keyed as
// "adult_depth", "juvenile_velocity", …) override fitting knobs.
type FileConfig struct {
	Weight    *float64               `toml:"weight"`
	WeightOpt *float64               `toml:"weight-opt"`
	GridStep  *float64               `toml:"grid-step"`
	Runs      map[string]RunOverride `toml:"runs"`
}

// RunOverride maps per-run settings.
type RunOverride struct {
	FloorMax       *float64 `toml:"floor-max"`
	MaxIterations  *int     `toml:"max-iterations"`
	MaxEvaluations *int     `toml:"max-evaluations"`
	FuncTol        *float64 `toml:"func-tol"`
	MaxStep        *float64 `toml:"max-step"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not
// an error: defaults apply.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}

		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// RunKey is the per-run section key, e.g. "adult_depth".
func RunKey(cfg hsi.RunConfig) string {
	return fmt.Sprintf("%s_%s", cfg.Stage, cfg.Variable)
}

// Apply returns a copy of configs with the file's overrides applied;
// unset fields keep their canonical values.
func (c FileConfig) Apply(configs []hsi.RunConfig) []hsi.RunConfig {
	out := make([]hsi.RunConfig, len(configs))
	copy(out, configs)

	for i := range out {
		if c.Weight != nil {
			out[i].Weight = *c.Weight
		}
		if c.WeightOpt != nil {
			out[i].WeightOpt = *c.WeightOpt
		}
		if c.GridStep != nil {
			out[i].GridStep = *c.GridStep
		}

		run, ok := c.Runs[RunKey(out[i])]
		if !ok {
			continue
		}
		if run.FloorMax != nil {
			out[i].FloorMax = *run.FloorMax
		}
		if run.MaxIterations != nil {
			out[i].Solver.MaxIterations = *run.MaxIterations
		}
		if run.MaxEvaluations != nil {
			out[i].Solver.MaxEvaluations = *run.MaxEvaluations
		}
		if run.FuncTol != nil {
			out[i].Solver.FuncTol = *run.FuncTol
		}
		if run.MaxStep != nil {
			out[i].Solver.MaxStep = *run.MaxStep
		}
	}

	return out
}
