package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/layout"
)

// fileConfig mirrors the tunable layout parameters for TOML config files.
// Pointer fields distinguish "not set" from zero values so a config file
// only overrides the keys it names.
type fileConfig struct {
	RankDir                      *string  `toml:"rankdir"`
	Ranker                       *string  `toml:"ranker"`
	Acyclicer                    *string  `toml:"acyclicer"`
	NodeSep                      *float64 `toml:"nodesep"`
	EdgeSep                      *float64 `toml:"edgesep"`
	RankSep                      *float64 `toml:"ranksep"`
	MarginX                      *float64 `toml:"marginx"`
	MarginY                      *float64 `toml:"marginy"`
	Align                        *string  `toml:"align"`
	DisableOptimalOrderHeuristic *bool    `toml:"disable_optimal_order_heuristic"`
}

// applyConfigFile reads a TOML config file and overlays its values onto cfg.
// Keys absent from the file leave cfg untouched.
func applyConfigFile(path string, cfg *layout.Config) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return errors.Wrap(errors.ErrCodeBadFormat, err, "reading config file %s", path)
	}

	if fc.RankDir != nil {
		cfg.RankDir = *fc.RankDir
	}
	if fc.Ranker != nil {
		cfg.Ranker = *fc.Ranker
	}
	if fc.Acyclicer != nil {
		cfg.Acyclicer = *fc.Acyclicer
	}
	if fc.NodeSep != nil {
		cfg.NodeSep = *fc.NodeSep
	}
	if fc.EdgeSep != nil {
		cfg.EdgeSep = *fc.EdgeSep
	}
	if fc.RankSep != nil {
		cfg.RankSep = *fc.RankSep
	}
	if fc.MarginX != nil {
		cfg.MarginX = *fc.MarginX
	}
	if fc.MarginY != nil {
		cfg.MarginY = *fc.MarginY
	}
	if fc.Align != nil {
		cfg.Align = *fc.Align
	}
	if fc.DisableOptimalOrderHeuristic != nil {
		cfg.DisableOptimalOrderHeuristic = *fc.DisableOptimalOrderHeuristic
	}
	return nil
}
