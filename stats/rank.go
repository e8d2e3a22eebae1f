// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"sort"
)

// ResolverStats is the complete per-resolver aggregate: warm and cold set
// statistics are always present, TLD statistics only when TLD measurement
// was enabled and at least one TLD query ran. The overall score is the
// mean of the warm and cold set scores; TLD results never contribute to
// it, they are display-only.
type ResolverStats struct {
	Label              string    `json:"label"`
	Addr               string    `json:"addr"`
	Warm               SetStats  `json:"warm"`
	Cold               SetStats  `json:"cold"`
	TLD                *SetStats `json:"tld,omitempty"`
	OverallScore       float64   `json:"overall_score"`
	SuccessRate        float64   `json:"success_rate"` // percent, across all sets
	InterceptsNXDomain bool      `json:"intercepts_nxdomain"`
}

// RankedResolver is a ResolverStats with its assigned rank (1 = best) and
// an optional tie-group label such as "1-3" shared by a contiguous run of
// statistically indistinguishable resolvers.
type RankedResolver struct {
	Rank     int           `json:"rank"`
	TieGroup string        `json:"tie_group,omitempty"`
	Stats    ResolverStats `json:"stats"`
}

// Rank orders resolvers ascending by overall score (lower is better) and
// assigns ranks 1..n. Equal scores keep their incoming relative order;
// distinguishing them further is the job of tie detection, not of a
// secondary sort key.
func Rank(resolvers []ResolverStats) []RankedResolver {
	sorted := make([]ResolverStats, len(resolvers))
	copy(sorted, resolvers)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].OverallScore < sorted[b].OverallScore
	})
	ranked := make([]RankedResolver, len(sorted))
	for i, s := range sorted {
		ranked[i] = RankedResolver{Rank: i + 1, Stats: s}
	}
	return ranked
}

// DetectTies labels contiguous runs of rank-adjacent resolvers whose
// score difference stays below the sum of their uncertainty half-widths.
// uncertainties must be aligned with ranked. Only consecutive pairs are
// tested and tied adjacency merges transitively into one group; groups of
// size one get no label.
func DetectTies(ranked []RankedResolver, uncertainties []float64) {
	if len(ranked) != len(uncertainties) {
		return
	}
	groupStart := 0
	for i := 1; i <= len(ranked); i++ {
		if i < len(ranked) {
			diff := ranked[i].Stats.OverallScore - ranked[i-1].Stats.OverallScore
			if diff < 0 {
				diff = -diff
			}
			if diff < uncertainties[i-1]+uncertainties[i] {
				continue // still inside the current group
			}
		}
		if i-groupStart >= 2 {
			label := fmt.Sprintf("%d-%d", ranked[groupStart].Rank, ranked[i-1].Rank)
			for j := groupStart; j < i; j++ {
				ranked[j].TieGroup = label
			}
		}
		groupStart = i
	}
}
