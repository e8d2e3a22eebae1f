// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/siemens/dnsrace/stats"
)

// setAggregation accumulates the raw material of one domain set for one
// resolver: successful latencies plus the counters spanning all attempts.
type setAggregation struct {
	latenciesMillis []float64
	success         int
	timeout         int
	total           int
}

func (a *setAggregation) account(latencyMillis float64, success, timeout bool) {
	a.total++
	if success {
		a.success++
		a.latenciesMillis = append(a.latenciesMillis, latencyMillis)
	}
	if timeout {
		a.timeout++
	}
}

// resolverAggregation collects all per-set raw material of one resolver,
// keyed by resolver address.
type resolverAggregation struct {
	warm setAggregation
	cold setAggregation
	tld  setAggregation
}

// rankResults reduces the collected task results into per-resolver
// statistics, ranks them by overall score and labels statistical tie
// groups.
func (b *Benchmark) rankResults(results []taskResult) []stats.RankedResolver {
	timeoutPenaltyMillis := float64(b.cfg.Timeout.Milliseconds())

	aggregations := map[string]*resolverAggregation{}
	for _, result := range results {
		addr := result.outcome.Resolver
		agg := aggregations[addr]
		if agg == nil {
			agg = &resolverAggregation{}
			aggregations[addr] = agg
		}
		latencyMillis := float64(result.outcome.Latency.Microseconds()) / 1000.0
		switch result.task.set {
		case SetWarm:
			agg.warm.account(latencyMillis, result.outcome.Success, result.outcome.Timeout)
		case SetCold:
			agg.cold.account(latencyMillis, result.outcome.Success, result.outcome.Timeout)
		case SetTLD:
			agg.tld.account(latencyMillis, result.outcome.Success, result.outcome.Timeout)
		}
	}

	// Join display labels and interception flags back by address.
	labels := map[string]string{}
	intercepts := map[string]bool{}
	for _, target := range b.targets {
		labels[target.Addr.String()] = target.Label
		intercepts[target.Addr.String()] = target.InterceptsNXDomain
	}

	list := make([]stats.ResolverStats, 0, len(aggregations))
	combined := map[string][]float64{} // warm+cold latencies, for uncertainty
	for addr, agg := range aggregations {
		warm := stats.ComputeSetStats(agg.warm.latenciesMillis,
			agg.warm.success, agg.warm.timeout, agg.warm.total, timeoutPenaltyMillis)
		cold := stats.ComputeSetStats(agg.cold.latenciesMillis,
			agg.cold.success, agg.cold.timeout, agg.cold.total, timeoutPenaltyMillis)
		var tld *stats.SetStats
		if b.cfg.QueryTLD && agg.tld.total > 0 {
			t := stats.ComputeSetStats(agg.tld.latenciesMillis,
				agg.tld.success, agg.tld.timeout, agg.tld.total, timeoutPenaltyMillis)
			tld = &t
		}
		total := agg.warm.total + agg.cold.total + agg.tld.total
		successes := agg.warm.success + agg.cold.success + agg.tld.success
		successRate := 0.0
		if total > 0 {
			successRate = float64(successes) / float64(total) * 100.0
		}
		label := labels[addr]
		if label == "" {
			label = addr
		}
		list = append(list, stats.ResolverStats{
			Label:              label,
			Addr:               addr,
			Warm:               warm,
			Cold:               cold,
			TLD:                tld,
			OverallScore:       (warm.Score + cold.Score) / 2.0,
			SuccessRate:        successRate,
			InterceptsNXDomain: intercepts[addr],
		})
		combined[addr] = append(append([]float64{}, agg.warm.latenciesMillis...),
			agg.cold.latenciesMillis...)
	}

	ranked := stats.Rank(list)
	uncertainties := make([]float64, len(ranked))
	for i, r := range ranked {
		uncertainties[i] = stats.Uncertainty(combined[r.Stats.Addr])
	}
	stats.DetectTies(ranked, uncertainties)
	return ranked
}
