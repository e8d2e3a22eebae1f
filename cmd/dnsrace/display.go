// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/siemens/dnsrace/bench"
	"github.com/siemens/dnsrace/stats"
	"github.com/siemens/dnsrace/types"
)

// printConfigSummary renders the effective benchmark configuration before
// the run starts.
func printConfigSummary(w io.Writer, targets []types.ResolverTarget, sets bench.DomainSets, cfg types.Config) {
	fmt.Fprintln(w, headingStyle.Styled("dnsrace configuration"))
	fmt.Fprintf(w, "resolvers:    %d\n", len(targets))
	for _, target := range targets {
		fmt.Fprintf(w, "  - %s (%s)\n", target.Label, target.Addr)
	}
	fmt.Fprintf(w, "warm domains: %d\n", len(sets.Warm))
	fmt.Fprintf(w, "cold domains: %d\n", len(sets.Cold))
	if cfg.QueryTLD {
		fmt.Fprintf(w, "tld domains:  %d\n", len(sets.TLD))
	}
	fmt.Fprintf(w, "rounds:       %d\n", cfg.Rounds)
	fmt.Fprintf(w, "timeout:      %s\n", cfg.Timeout)
	fmt.Fprintf(w, "concurrency:  %d\n", cfg.MaxInflight)
	fmt.Fprintf(w, "spacing:      %s\n", cfg.Spacing)
	fmt.Fprintf(w, "query AAAA:   %v\n", cfg.QueryAAAA)
	fmt.Fprintf(w, "dnssec:       %v\n", cfg.DNSSEC)
	if cfg.Seed != nil {
		fmt.Fprintf(w, "seed:         %d\n", *cfg.Seed)
	}
	fmt.Fprintln(w)
}

// printCharacterization renders the per-resolver NXDOMAIN interception
// verdicts.
func printCharacterization(w io.Writer, targets []types.ResolverTarget) {
	for _, target := range targets {
		verdict := honestResolverStyle.Styled("OK")
		if target.InterceptsNXDomain {
			verdict = interceptingResolverStyle.Styled("INTERCEPTS NXDOMAIN")
		}
		fmt.Fprintf(w, "  %s (%s): %s\n", target.Label, target.Addr.Addr(), verdict)
	}
	fmt.Fprintln(w)
}

// renderResults renders the ranked benchmark results as a plain-text
// table. Columns are sized to the widest label so the numbers don't
// zig-zag around.
func renderResults(w io.Writer, ranked []stats.RankedResolver, withTLD bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Styled("benchmark results"))
	labelwidth := len("resolver")
	for _, r := range ranked {
		if l := len(r.Stats.Label); l > labelwidth {
			labelwidth = l
		}
	}
	fmt.Fprintf(w, "%4s  %-5s  %-*s  %8s  %9s  %9s  %9s  %9s",
		"rank", "tie", labelwidth, "resolver", "score",
		"warm p50", "warm p95", "cold p50", "cold p95")
	if withTLD {
		fmt.Fprintf(w, "  %9s", "tld p50")
	}
	fmt.Fprintf(w, "  %7s  %s\n", "succ %", "nxdomain")
	for _, r := range ranked {
		s := r.Stats
		tie := ""
		if r.TieGroup != "" {
			tie = tieGroupStyle.Styled(r.TieGroup)
		}
		fmt.Fprintf(w, "%4d  %-5s  %-*s  %8.1f  %7.1fms  %7.1fms  %7.1fms  %7.1fms",
			r.Rank, tie, labelwidth, s.Label, s.OverallScore,
			s.Warm.P50Millis, s.Warm.P95Millis,
			s.Cold.P50Millis, s.Cold.P95Millis)
		if withTLD {
			if s.TLD != nil {
				fmt.Fprintf(w, "  %7.1fms", s.TLD.P50Millis)
			} else {
				fmt.Fprintf(w, "  %9s", "-")
			}
		}
		verdict := honestResolverStyle.Styled("no")
		if s.InterceptsNXDomain {
			verdict = interceptingResolverStyle.Styled("yes")
		}
		fmt.Fprintf(w, "  %6.1f%%  %s\n", s.SuccessRate, verdict)
	}
}
