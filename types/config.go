// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "time"

// Benchmark configuration defaults.
const (
	DefaultRounds        = 3
	DefaultTimeout       = 2000 * time.Millisecond
	DefaultMaxInflight   = 64
	DefaultSpacing       = 5 * time.Millisecond
	DefaultTopN          = 50
	DefaultMaxResolverMS = 1000
)

// Config holds the benchmark knobs. The zero value is not usable; start
// from [DefaultConfig] instead.
type Config struct {
	// Rounds is the number of benchmark rounds; every round executes the
	// full (shuffled) task cross-product once.
	Rounds int
	// Timeout is the per-query deadline.
	Timeout time.Duration
	// MaxInflight bounds the number of simultaneously in-flight queries
	// across the whole round, not per resolver.
	MaxInflight int
	// Spacing is an optional delay each task waits after admission and
	// before sending its query, throttling the egress rate.
	Spacing time.Duration
	// QueryAAAA additionally queries AAAA alongside A.
	QueryAAAA bool
	// DNSSEC sets the EDNS0 DNSSEC-OK bit on all queries.
	DNSSEC bool
	// QueryTLD enables the TLD diversity domain set.
	QueryTLD bool
	// Discover forces the discovery prefilter even for small candidate
	// lists.
	Discover bool
	// TopN is the number of resolvers the discovery prefilter retains.
	TopN int
	// MaxResolverMillis is a post-hoc filter threshold applied by the
	// caller: resolvers with a warm p50 above it are dropped from the
	// results.
	MaxResolverMillis float64
	// Seed optionally makes shuffling and transaction-id generation
	// deterministic for reproducible runs; nil means entropy-seeded.
	Seed *uint64
}

// DefaultConfig returns a Config with the stock defaults; TLD measurement
// is on by default, AAAA and DNSSEC are off.
func DefaultConfig() Config {
	return Config{
		Rounds:            DefaultRounds,
		Timeout:           DefaultTimeout,
		MaxInflight:       DefaultMaxInflight,
		Spacing:           DefaultSpacing,
		QueryTLD:          true,
		TopN:              DefaultTopN,
		MaxResolverMillis: DefaultMaxResolverMS,
	}
}
