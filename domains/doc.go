// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package domains provides the built-in domain sets the benchmark queries,
plus loading of user-supplied domain list files.

The warm set contains popular domains almost certainly sitting in every
resolver's cache, measuring best-case cached latency. The cold set
contains real but rarely-queried domains across diverse TLDs, measuring
uncached resolution. The TLD set holds one domain per distinct top-level
domain to sample latency diversity across authoritative infrastructure.
*/
package domains
