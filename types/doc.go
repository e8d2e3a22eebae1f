// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package types defines dnsrace's information model. Which is rather simple
and mainly revolves around [ResolverTarget] (a resolver under test),
[QueryOutcome] (the result of a single measured query), and [Config] (the
benchmark knobs).

A [ResolverTarget] is read-mostly: it is constructed up front from an
address string, a resolver list file, /etc/resolv.conf, or the built-in
defaults, and afterwards only its InterceptsNXDomain flag is set (exactly
once, by the NXDOMAIN characterization probe) before the benchmark rounds
start.

[QueryOutcome] values are write-once: each query task produces exactly one
outcome and hands it back over a completion channel, so no outcome is ever
mutated concurrently.
*/
package types
