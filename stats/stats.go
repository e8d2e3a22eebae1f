// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"
)

// SetStats aggregates the latency distribution of one named domain set
// (warm, cold, or tld) for one resolver. Percentiles, mean and standard
// deviation cover only the successful samples; TimeoutCount and
// TotalCount span all attempts.
type SetStats struct {
	P50Millis    float64 `json:"p50_ms"`
	P95Millis    float64 `json:"p95_ms"`
	MeanMillis   float64 `json:"mean_ms"`
	StddevMillis float64 `json:"stddev_ms"`
	SuccessCount int     `json:"success_count"`
	TimeoutCount int     `json:"timeout_count"`
	TotalCount   int     `json:"total_count"`
	Score        float64 `json:"score"`
}

// Percentile returns the p-th percentile of a pre-sorted sample using the
// nearest-rank method: the value at index clamp(ceil(p/100×n), 1, n),
// 1-based. It returns 0 for an empty sample.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := int(math.Ceil(p / 100.0 * float64(n)))
	if rank < 1 {
		rank = 1
	}
	if rank > n {
		rank = n
	}
	return sorted[rank-1]
}

// Mean returns the arithmetic mean of a sample, or 0 for an empty one.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Stddev returns the population standard deviation of a sample, or 0 for
// an empty one.
func Stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := Mean(values)
	variance := 0.0
	for _, v := range values {
		variance += (v - avg) * (v - avg)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// setScore blends median latency, tail spread and reliability into the
// composite set score: p50 + 0.5×(p95−p50) + penalty×timeoutRate.
func setScore(s SetStats, timeoutPenaltyMillis float64) float64 {
	timeoutRate := 0.0
	if s.TotalCount > 0 {
		timeoutRate = float64(s.TimeoutCount) / float64(s.TotalCount)
	}
	return s.P50Millis + 0.5*(s.P95Millis-s.P50Millis) + timeoutPenaltyMillis*timeoutRate
}

// ComputeSetStats computes the SetStats of one domain set from the
// successful latency samples (in milliseconds) and the overall counters.
// The statistics are always computed fresh over the full sample, never
// updated incrementally. An empty sample yields zero percentiles, mean
// and standard deviation.
func ComputeSetStats(latenciesMillis []float64, successCount, timeoutCount, totalCount int,
	timeoutPenaltyMillis float64,
) SetStats {
	sorted := make([]float64, len(latenciesMillis))
	copy(sorted, latenciesMillis)
	sort.Float64s(sorted)
	s := SetStats{
		P50Millis:    Percentile(sorted, 50),
		P95Millis:    Percentile(sorted, 95),
		MeanMillis:   Mean(sorted),
		StddevMillis: Stddev(sorted),
		SuccessCount: successCount,
		TimeoutCount: timeoutCount,
		TotalCount:   totalCount,
	}
	s.Score = setScore(s, timeoutPenaltyMillis)
	return s
}
