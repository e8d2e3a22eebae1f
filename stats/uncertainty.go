// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"
)

// madScale makes the median absolute deviation a consistent estimator of
// the standard deviation under normality.
const madScale = 1.4826

// Uncertainty returns an uncertainty half-width for a latency sample, in
// the same unit as the sample: the median absolute deviation around the
// sample median, scaled by 1.4826. Samples of fewer than two values have
// no measurable spread and yield 0.
func Uncertainty(latencies []float64) float64 {
	if len(latencies) < 2 {
		return 0
	}
	sorted := make([]float64, len(latencies))
	copy(sorted, latencies)
	sort.Float64s(sorted)
	median := Percentile(sorted, 50)
	deviations := make([]float64, len(sorted))
	for i, v := range sorted {
		deviations[i] = math.Abs(v - median)
	}
	sort.Float64s(deviations)
	return madScale * Percentile(deviations, 50)
}
