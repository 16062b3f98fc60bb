package layout

import (
	"github.com/strataviz/strata/pkg/errors"
)

// Rank direction values. TB lays ranks out top to bottom; the other three
// are produced by transforming a TB layout.
const (
	RankDirTB = "tb"
	RankDirBT = "bt"
	RankDirLR = "lr"
	RankDirRL = "rl"
)

// Ranker algorithm names.
const (
	RankerNetworkSimplex = "network-simplex"
	RankerTightTree      = "tight-tree"
	RankerLongestPath    = "longest-path"
	RankerNone           = "none"
)

// Acyclicer algorithm names.
const (
	AcyclicerDFS    = "dfs"
	AcyclicerGreedy = "greedy"
)

// Config holds the tunable parameters of a layout run. Use DefaultConfig
// and override fields as needed; a zero Config is not usable.
type Config struct {
	// RankDir selects the direction ranks flow: RankDirTB, RankDirBT,
	// RankDirLR, or RankDirRL.
	RankDir string

	// Ranker selects the layering algorithm.
	Ranker string

	// Acyclicer selects the cycle-breaking strategy.
	Acyclicer string

	// NodeSep is the minimum horizontal gap between adjacent nodes in a
	// rank. EdgeSep is the same gap between adjacent edge chains. RankSep
	// is the vertical gap between ranks.
	NodeSep float64
	EdgeSep float64
	RankSep float64

	// MarginX and MarginY pad the finished drawing.
	MarginX float64
	MarginY float64

	// NodeRankFactor controls which empty ranks are collapsed: ranks whose
	// index is a multiple of the factor survive.
	NodeRankFactor int

	// Align forces a single Brandes-Köpf alignment ("ul", "ur", "dl",
	// "dr") instead of balancing all four.
	Align string

	// DisableOptimalOrderHeuristic skips the adjacent-swap refinement after
	// each ordering sweep. Layouts get slightly more crossings but large
	// graphs order noticeably faster.
	DisableOptimalOrderHeuristic bool

	// MaxSimplexPivots caps network simplex iterations. Zero means the
	// default of 4·n² for an n-node graph.
	MaxSimplexPivots int
}

// DefaultConfig returns the standard layout parameters.
func DefaultConfig() *Config {
	return &Config{
		RankDir:        RankDirTB,
		Ranker:         RankerNetworkSimplex,
		Acyclicer:      AcyclicerDFS,
		NodeSep:        50,
		EdgeSep:        20,
		RankSep:        50,
		MarginX:        0,
		MarginY:        0,
		NodeRankFactor: 1,
	}
}

// Clone returns a copy of the config. The pipeline mutates spacing values
// while running, so it always works on a clone.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}

// Validate checks enum fields and numeric ranges.
func (c *Config) Validate() error {
	switch c.RankDir {
	case RankDirTB, RankDirBT, RankDirLR, RankDirRL:
	default:
		return errors.New(errors.ErrCodeBadConfig, "unknown rank direction "+c.RankDir)
	}
	switch c.Ranker {
	case RankerNetworkSimplex, RankerTightTree, RankerLongestPath, RankerNone:
	default:
		return errors.New(errors.ErrCodeBadConfig, "unknown ranker "+c.Ranker)
	}
	switch c.Acyclicer {
	case AcyclicerDFS, AcyclicerGreedy:
	default:
		return errors.New(errors.ErrCodeBadConfig, "unknown acyclicer "+c.Acyclicer)
	}
	switch c.Align {
	case "", "ul", "ur", "dl", "dr":
	default:
		return errors.New(errors.ErrCodeBadConfig, "unknown alignment "+c.Align)
	}
	if c.NodeSep < 0 || c.EdgeSep < 0 || c.RankSep < 0 {
		return errors.New(errors.ErrCodeBadConfig, "separations must be non-negative")
	}
	if c.NodeRankFactor < 1 {
		return errors.New(errors.ErrCodeBadConfig, "node rank factor must be at least 1")
	}
	return nil
}
