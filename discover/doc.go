// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package discover prefilters large resolver candidate lists before the
full benchmark commits to them.

Benchmarking hundreds of candidates at full fidelity (multiple rounds
times multiple domain sets times both query kinds) is prohibitively
slow, so [Prefilter] reduces the list in two phases: a cheap reachability
screen (one A query per candidate at a short fixed timeout) eliminates
dead addresses, and a quick warm-only ranking approximates the final
ordering well enough to discard clearly inferior resolvers. Discovery is
purely a cost reduction, never a quality filter: when the screen already
leaves no more than the configured top-N survivors, all of them are kept.
*/
package discover
