package namegen

import (
	"fmt"
	"math"
	"strings"
)

// Strategy selects how names are generated.
type Strategy uint8

const (
	// Auto lets SelectStrategy decide from the files-to-space ratio.
	Auto Strategy = iota
	// OnDemand draws every name independently and redraws on collision.
	OnDemand
	// Exhaustive enumerates the naming space and draws without replacement.
	Exhaustive
)

func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case OnDemand:
		return "on_demand"
	case Exhaustive:
		return "match"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses a strategy name. "match" and "exhaustive" both name
// the exhaustive strategy; the empty string means Auto.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "on_demand", "on-demand", "ondemand":
		return OnDemand, nil
	case "match", "exhaustive":
		return Exhaustive, nil
	default:
		return Auto, fmt.Errorf("unknown generation strategy %q (want on_demand or match)", s)
	}
}

// Set implements pflag.Value.
func (s *Strategy) Set(v string) error {
	parsed, err := ParseStrategy(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Strategy) Type() string { return "strategy" }

// Ratio returns fileCount/space. An overflowed space counts as infinite.
func Ratio(fileCount int, space uint64, ok bool) float64 {
	if !ok || fileCount == 0 {
		return 0
	}
	if space == 0 {
		return math.Inf(1)
	}
	return float64(fileCount) / float64(space)
}

// SelectStrategy returns forced when it is not Auto. Otherwise it returns
// OnDemand when the files-to-space ratio is below threshold and Exhaustive
// when it is not.
func SelectStrategy(fileCount int, space uint64, ok bool, forced Strategy, threshold float64) Strategy {
	if forced != Auto {
		return forced
	}
	if Ratio(fileCount, space, ok) < threshold {
		return OnDemand
	}
	return Exhaustive
}
