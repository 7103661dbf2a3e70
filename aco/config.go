// Package aco - INI-backed configuration loading.
//
// A config file overlays DefaultOptions; any key left out keeps its
// default, so a minimal file only names the knobs it changes:
//
//	[colony]
//	ant_count         = 40
//	iterations        = 80
//	evaporation_rate  = 0.15
//	deposit_constant  = 50
//	early_exit_length = 200
//	workers           = 4
//	seed              = 1337
//
//	[ant]
//	alpha                = 1.5
//	beta                 = 3.0
//	selection_policy     = roulette
//	stagnation_threshold = 100
//	escape_budget        = 200
//	recency_window       = 5
//	step_ceiling         = 20000
//	path_ceiling         = 10000
//
//	[pheromone]
//	initial          = 1.0
//	floor            = 0.01
//	long_path_length = 1000
//	long_path_shrink = 0.1
package aco

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// section names of the config file.
const (
	sectionColony    = "colony"
	sectionAnt       = "ant"
	sectionPheromone = "pheromone"
)

// policyKey is resolved by name rather than struct mapping.
const policyKey = "selection_policy"

// LoadOptions reads tunables from the INI file at path, overlaid on
// DefaultOptions, and validates the combined result.
func LoadOptions(path string) (Options, error) {
	o := DefaultOptions()

	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return o, fmt.Errorf("aco: load config %q: %w", path, err)
	}

	for _, name := range []string{sectionColony, sectionAnt, sectionPheromone} {
		if err = cfg.Section(name).MapTo(&o); err != nil {
			return o, fmt.Errorf("aco: map [%s] section: %w", name, err)
		}
	}

	if key, kerr := cfg.Section(sectionAnt).GetKey(policyKey); kerr == nil {
		if o.Policy, err = ParseSelectionPolicy(key.String()); err != nil {
			return o, err
		}
	}

	if err = o.validate(); err != nil {
		return o, err
	}

	return o, nil
}

// ParseSelectionPolicy maps a config name to its SelectionPolicy.
func ParseSelectionPolicy(name string) (SelectionPolicy, error) {
	switch name {
	case "greedy":
		return GreedyTiebreak, nil
	case "roulette":
		return RouletteWheel, nil
	default:
		return GreedyTiebreak, fmt.Errorf("%w: unknown selection policy %q", ErrOptionViolation, name)
	}
}
