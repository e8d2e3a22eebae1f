// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package stats turns raw per-resolver latency samples into comparable
numbers, and comparable numbers into a ranking.

Per domain set, [ComputeSetStats] produces nearest-rank p50/p95
percentiles, mean and population standard deviation over the successful
samples, and a composite score blending median latency, tail spread and a
timeout penalty: p50 + 0.5×(p95−p50) + penalty×timeoutRate. The penalty
unit is the full query timeout, so a resolver that keeps timing out
scores strictly worse than any finite-latency one. Lower scores are
better.

[Rank] orders resolvers ascending by overall score, and [DetectTies]
groups rank-adjacent resolvers whose score difference is smaller than the
sum of their MAD-based uncertainty half-widths. Only consecutive pairs
are compared and tied adjacency merges transitively, so a wide-banded
middle resolver can pull two ends into one group even though the ends
alone would not tie with each other; that approximation is intended.
*/
package stats
