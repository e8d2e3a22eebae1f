// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	resolverAddrs   *[]string
	resolverFile    *string
	warmDomainsFile *string
	coldDomainsFile *string
	tldDomainsFile  *string
	noTLD           *bool
	rounds          *uint
	timeout         *time.Duration
	concurrency     *uint
	spacing         *time.Duration
	queryAAAA       *bool
	dnssec          *bool
	discoverMode    *bool
	noDiscover      *bool
	topN            *uint
	maxResolverMS   *uint
	csvPath         *string
	seed            *uint64
	systemResolvers *bool
	debug           *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "dnsrace [flags]",
		Short:   "dnsrace benchmarks and ranks DNS resolvers by querying them over UDP",
		Version: "0.9",
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if *rounds < 1 {
				return fmt.Errorf("--rounds must be at least 1")
			}
			if *concurrency < 1 {
				return fmt.Errorf("--concurrency must be at least 1")
			}
			if *timeout < time.Millisecond {
				return fmt.Errorf("--timeout must be at least 1ms")
			}
			if *topN < 1 {
				return fmt.Errorf("--top must be at least 1")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if *debug {
				log.SetLevel(log.DebugLevel)
				log.Debugf("debug logging enabled")
			}
			return raceAndReport(cmd)
		},
	}
	// Sets up the flags.
	resolverAddrs = rootCmd.PersistentFlags().StringArrayP(
		"resolver", "r", nil, "DNS resolver address (repeatable, e.g. 1.1.1.1 or 1.1.1.1:53)")
	resolverFile = rootCmd.PersistentFlags().StringP(
		"resolver-file", "f", "", "file containing resolver addresses (one per line)")
	warmDomainsFile = rootCmd.PersistentFlags().String(
		"warm-domains", "", "file containing warm (cached) domains to query")
	coldDomainsFile = rootCmd.PersistentFlags().String(
		"cold-domains", "", "file containing cold (uncached) domains to query")
	tldDomainsFile = rootCmd.PersistentFlags().String(
		"tld-domains", "", "file containing TLD-diverse domains to query")
	noTLD = rootCmd.PersistentFlags().Bool(
		"no-tld", false, "disable TLD diversity measurement")
	rounds = rootCmd.PersistentFlags().UintP(
		"rounds", "n", 3, "number of benchmark rounds")
	timeout = rootCmd.PersistentFlags().DurationP(
		"timeout", "t", 2000*time.Millisecond, "per-query timeout")
	concurrency = rootCmd.PersistentFlags().UintP(
		"concurrency", "c", 64, "maximum concurrent in-flight queries")
	spacing = rootCmd.PersistentFlags().Duration(
		"spacing", 5*time.Millisecond, "inter-query spacing delay")
	queryAAAA = rootCmd.PersistentFlags().Bool(
		"aaaa", false, "also query AAAA records")
	dnssec = rootCmd.PersistentFlags().Bool(
		"dnssec", false, "set the DNSSEC-OK (DO) bit on all queries")
	discoverMode = rootCmd.PersistentFlags().Bool(
		"discover", false, "prefilter a large resolver list before benchmarking")
	noDiscover = rootCmd.PersistentFlags().Bool(
		"no-discover", false, "never prefilter, benchmark all resolvers")
	topN = rootCmd.PersistentFlags().Uint(
		"top", 50, "number of top resolvers the prefilter keeps")
	maxResolverMS = rootCmd.PersistentFlags().Uint(
		"max-resolver-ms", 1000, "drop resolvers with warm p50 above this from the results")
	csvPath = rootCmd.PersistentFlags().StringP(
		"output", "o", "", "write results to this CSV file")
	seed = rootCmd.PersistentFlags().Uint64P(
		"seed", "s", 0, "random seed for reproducible results")
	systemResolvers = rootCmd.PersistentFlags().Bool(
		"system-resolvers", false, "include resolvers from /etc/resolv.conf")
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	return
}
