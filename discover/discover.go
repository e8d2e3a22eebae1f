// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package discover

import (
	"sort"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/miekg/dns"
	log "github.com/sirupsen/logrus"

	"github.com/siemens/dnsrace/probe"
	"github.com/siemens/dnsrace/stats"
	"github.com/siemens/dnsrace/types"
	"github.com/siemens/dnsrace/wire"
)

// screenTimeout is the short fixed deadline of the phase-1 reachability
// screen; a resolver that cannot answer a cached A query this fast is
// dropped as unreachable.
const screenTimeout = 500 * time.Millisecond

// fallbackScreenDomain is queried when no warm domains are configured at
// all.
const fallbackScreenDomain = "google.com"

// Prefilter reduces a resolver candidate list to at most cfg.TopN targets
// worth fully benchmarking. Phase 1 screens every candidate with a single
// short-deadline A query for a representative warm domain; phase 2 ranks
// the survivors by their warm-set composite score and keeps the top N.
// When the screen already leaves no more than N survivors, all of them
// are kept.
func Prefilter(candidates []types.ResolverTarget, warmDomains []string, cfg types.Config) []types.ResolverTarget {
	log.Infof("discovery: screening %d resolver candidates", len(candidates))
	screenDomain := fallbackScreenDomain
	if len(warmDomains) > 0 {
		screenDomain = warmDomains[0]
	}

	survivors := screen(candidates, screenDomain, cfg)
	log.Infof("discovery: %d/%d resolvers reachable (%d unreachable, dropped)",
		len(survivors), len(candidates), len(candidates)-len(survivors))

	if len(survivors) <= cfg.TopN {
		log.Infof("discovery: keeping all %d survivors (at or below top-N %d)",
			len(survivors), cfg.TopN)
		return survivors
	}

	kept := quickRank(survivors, warmDomains, cfg)
	log.Infof("discovery: kept top %d resolvers for the full benchmark", len(kept))
	return kept
}

// screen fires one A query per candidate under the benchmark-wide
// concurrency bound and returns the candidates that answered with
// NOERROR within the screen deadline, in their original order.
func screen(candidates []types.ResolverTarget, domain string, cfg types.Config) []types.ResolverTarget {
	reachable := make([]bool, len(candidates))
	pool := workerpool.New(cfg.MaxInflight)
	for i := range candidates {
		i := i
		pool.Submit(func() {
			txid := dns.Id()
			query, err := wire.BuildQuery(domain, types.QueryA, txid, cfg.DNSSEC)
			if err != nil {
				return
			}
			outcome := probe.Exchange(candidates[i].Addr, query, screenTimeout,
				txid, domain, types.QueryA)
			reachable[i] = outcome.Success
		})
	}
	pool.StopWait()

	var survivors []types.ResolverTarget
	for i, candidate := range candidates {
		if reachable[i] {
			survivors = append(survivors, candidate)
		}
	}
	return survivors
}

// quickRank runs one full-timeout A query per survivor per warm domain,
// scores each survivor's warm set, and returns the top-N by composite
// score (ascending, lower is better), preserving the survivors' relative
// order.
func quickRank(survivors []types.ResolverTarget, warmDomains []string, cfg types.Config) []types.ResolverTarget {
	log.Infof("discovery: quick benchmark on %d survivors", len(survivors))
	type sample struct {
		addr          string
		latencyMillis float64
		ok            bool
	}
	samples := make(chan sample, len(survivors)*len(warmDomains))
	pool := workerpool.New(cfg.MaxInflight)
	for _, survivor := range survivors {
		for _, domain := range warmDomains {
			survivor, domain := survivor, domain
			pool.Submit(func() {
				txid := dns.Id()
				query, err := wire.BuildQuery(domain, types.QueryA, txid, cfg.DNSSEC)
				if err != nil {
					samples <- sample{addr: survivor.Addr.String()}
					return
				}
				outcome := probe.Exchange(survivor.Addr, query, cfg.Timeout,
					txid, domain, types.QueryA)
				samples <- sample{
					addr:          survivor.Addr.String(),
					latencyMillis: float64(outcome.Latency.Microseconds()) / 1000.0,
					ok:            outcome.Success,
				}
			})
		}
	}
	pool.StopWait()
	close(samples)

	latencies := map[string][]float64{}
	for s := range samples {
		if s.ok {
			latencies[s.addr] = append(latencies[s.addr], s.latencyMillis)
		}
	}

	timeoutPenaltyMillis := float64(cfg.Timeout.Milliseconds())
	type scored struct {
		addr  string
		score float64
	}
	scores := make([]scored, 0, len(latencies))
	for addr, lats := range latencies {
		warm := stats.ComputeSetStats(lats, len(lats), 0, len(lats), timeoutPenaltyMillis)
		scores = append(scores, scored{addr: addr, score: warm.Score})
	}
	sort.SliceStable(scores, func(a, b int) bool { return scores[a].score < scores[b].score })
	if len(scores) > cfg.TopN {
		scores = scores[:cfg.TopN]
	}
	top := map[string]bool{}
	for _, s := range scores {
		top[s.addr] = true
	}

	var kept []types.ResolverTarget
	for _, survivor := range survivors {
		if top[survivor.Addr.String()] {
			kept = append(kept, survivor)
		}
	}
	return kept
}
