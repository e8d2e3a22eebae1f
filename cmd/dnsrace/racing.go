// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siemens/dnsrace/bench"
	"github.com/siemens/dnsrace/discover"
	"github.com/siemens/dnsrace/domains"
	"github.com/siemens/dnsrace/types"
)

// autoDiscoverThreshold is the candidate list size above which the
// discovery prefilter kicks in on its own (unless --no-discover).
const autoDiscoverThreshold = 20

// raceAndReport assembles resolvers, domain sets and configuration from
// the command line, optionally prefilters the candidates, characterizes
// the survivors for NXDOMAIN interception, runs the benchmark rounds with
// a live progress display, and finally renders the ranked results.
func raceAndReport(cmd *cobra.Command) error {
	targets, err := collectResolvers()
	if err != nil {
		return err
	}
	sets, err := collectDomainSets()
	if err != nil {
		return err
	}

	cfg := types.DefaultConfig()
	cfg.Rounds = int(*rounds)
	cfg.Timeout = *timeout
	cfg.MaxInflight = int(*concurrency)
	cfg.Spacing = *spacing
	cfg.QueryAAAA = *queryAAAA
	cfg.DNSSEC = *dnssec
	cfg.QueryTLD = !*noTLD
	cfg.TopN = int(*topN)
	cfg.MaxResolverMillis = float64(*maxResolverMS)
	cfg.Discover = !*noDiscover &&
		(*discoverMode || len(targets) > autoDiscoverThreshold)
	if cmd.Flags().Changed("seed") {
		s := *seed
		cfg.Seed = &s
	}

	printConfigSummary(os.Stdout, targets, sets, cfg)

	// Prefilter large candidate lists before characterization, so no time
	// is wasted characterizing resolvers that get dropped anyway.
	if cfg.Discover {
		targets = discover.Prefilter(targets, sets.Warm, cfg)
	}
	if len(targets) == 0 {
		return fmt.Errorf("no (reachable) resolvers left to benchmark")
	}

	bench.Characterize(targets, cfg.Timeout)
	printCharacterization(os.Stdout, targets)

	progress := newLiveProgress()
	ranked := bench.New(targets, sets, cfg,
		bench.WithProgress(progress.update)).Run()
	progress.Stop()

	// Post-hoc latency cutoff: drop resolvers whose warm p50 exceeds the
	// threshold, then re-rank the remainder from scratch.
	filtered := ranked[:0]
	for _, r := range ranked {
		if r.Stats.Warm.P50Millis <= cfg.MaxResolverMillis {
			filtered = append(filtered, r)
		}
	}
	if dropped := len(ranked) - len(filtered); dropped > 0 {
		fmt.Printf("filtered %d resolver(s) with warm p50 > %.0f ms\n",
			dropped, cfg.MaxResolverMillis)
	}
	for i := range filtered {
		filtered[i].Rank = i + 1
		filtered[i].TieGroup = ""
	}

	renderResults(os.Stdout, filtered, cfg.QueryTLD)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, filtered, cfg.QueryTLD); err != nil {
			return err
		}
		fmt.Printf("results written to: %s\n", *csvPath)
	}
	return nil
}

// collectResolvers gathers resolver targets from all configured sources,
// falling back to the built-in defaults when nothing was specified.
func collectResolvers() ([]types.ResolverTarget, error) {
	var targets []types.ResolverTarget
	for _, addr := range *resolverAddrs {
		target, err := types.ParseResolver(addr)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	if *resolverFile != "" {
		fromFile, err := types.ReadResolverFile(*resolverFile)
		if err != nil {
			return nil, err
		}
		targets = append(targets, fromFile...)
	}
	if *systemResolvers {
		targets = append(targets, types.SystemResolvers()...)
	}
	if len(targets) == 0 {
		targets = types.DefaultResolvers()
	}
	return targets, nil
}

// collectDomainSets loads the configured domain list files, falling back
// to the built-in sets.
func collectDomainSets() (bench.DomainSets, error) {
	sets := bench.DomainSets{
		Warm: domains.DefaultWarm(),
		Cold: domains.DefaultCold(),
		TLD:  domains.DefaultTLD(),
	}
	var err error
	if *warmDomainsFile != "" {
		if sets.Warm, err = domains.ReadFile(*warmDomainsFile); err != nil {
			return sets, err
		}
	}
	if *coldDomainsFile != "" {
		if sets.Cold, err = domains.ReadFile(*coldDomainsFile); err != nil {
			return sets, err
		}
	}
	if *tldDomainsFile != "" {
		if sets.TLD, err = domains.ReadFile(*tldDomainsFile); err != nil {
			return sets, err
		}
	}
	return sets, nil
}
