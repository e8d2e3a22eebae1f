// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package bench schedules and aggregates the actual benchmark: the full
cross-product of resolvers × domain sets × query kinds, executed over
multiple rounds.

Each round shuffles its own copy of the task list and then runs all tasks
maximally parallel under a single global admission gate (a
goroutine-limited [gammazero/workerpool]) bounding the number of
simultaneously in-flight queries across the whole round. Rounds form a
strict barrier: round N+1's shuffle isn't even computed before every task
of round N has completed or failed terminally. Task results travel back
over a completion channel and are reduced single-threadedly, so there is
no shared mutable aggregation state during a round.

Randomness, the per-round shuffle as well as the per-task transaction
ids, comes from one explicit [Rand], either deterministically seeded for
reproducible runs or entropy-seeded.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package bench
