package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	platformcore "github.com/vovakirdan/kitchen-rush/internal/core"
)

// Metric selects how the distance between two boxes is measured.
type Metric int

const (
	// MetricCenter measures between the two box centers.
	MetricCenter Metric = iota
	// MetricBounds measures the gap between the nearest edges; overlapping
	// boxes are at distance zero.
	MetricBounds
)

// String returns the config name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricCenter:
		return "center"
	case MetricBounds:
		return "bounds"
	default:
		return "unknown"
	}
}

// ParseMetric resolves a config name. The empty string means center.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", "center":
		return MetricCenter, nil
	case "bounds":
		return MetricBounds, nil
	default:
		return MetricCenter, fmt.Errorf("unknown proximity metric %q", s)
	}
}

func center(r platformcore.Rect) r2.Vec {
	x, y := r.CenterF()
	return r2.Vec{X: x, Y: y}
}

// Distance returns the distance between two boxes under metric m.
func Distance(a, b platformcore.Rect, m Metric) float64 {
	if m == MetricBounds {
		gap := r2.Vec{
			X: float64(max(b.X-a.Right(), a.X-b.Right(), 0)),
			Y: float64(max(b.Y-a.Bottom(), a.Y-b.Bottom(), 0)),
		}
		return r2.Norm(gap)
	}
	return r2.Norm(r2.Sub(center(a), center(b)))
}

// IsNear reports whether a and b are strictly closer than threshold.
func IsNear(a, b platformcore.Rect, threshold float64, m Metric) bool {
	return Distance(a, b, m) < threshold
}

// Reach is the proximity rule of one interaction type.
type Reach struct {
	Threshold float64
	Metric    Metric
}

// Near applies the reach rule to two boxes.
func (r Reach) Near(a, b platformcore.Rect) bool {
	return IsNear(a, b, r.Threshold, r.Metric)
}

// ReachTable holds one canonical reach per interaction type.
type ReachTable struct {
	Pickup  Reach // Ingredient crates
	Station Reach // Placing on and taking from the chopping board and the pot
	Process Reach // Starting a chop
	Trash   Reach // The bin, and how far around it a sweep clears litter
	Serve   Reach // The pass
	Plate   Reach // The plate dispenser
	Floor   Reach // Items and plates resting on the floor
}

// DefaultReach returns the canonical thresholds.
func DefaultReach() ReachTable {
	return ReachTable{
		Pickup:  Reach{Threshold: 50, Metric: MetricCenter},
		Station: Reach{Threshold: 50, Metric: MetricCenter},
		Process: Reach{Threshold: 80, Metric: MetricCenter},
		Trash:   Reach{Threshold: 80, Metric: MetricCenter},
		Serve:   Reach{Threshold: 80, Metric: MetricCenter},
		Plate:   Reach{Threshold: 80, Metric: MetricBounds},
		Floor:   Reach{Threshold: 80, Metric: MetricCenter},
	}
}

// nearest returns the index of the box closest to from under r, or -1 when
// none is within reach. Ties keep the earliest box.
func (r Reach) nearest(from platformcore.Rect, boxes []platformcore.Rect) int {
	best := -1
	bestDist := math.Inf(1)
	for i, b := range boxes {
		d := Distance(from, b, r.Metric)
		if d < r.Threshold && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
