// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package bench

import (
	"sync/atomic"
	"time"

	"github.com/gammazero/workerpool"
	log "github.com/sirupsen/logrus"

	"github.com/siemens/dnsrace/probe"
	"github.com/siemens/dnsrace/stats"
	"github.com/siemens/dnsrace/types"
	"github.com/siemens/dnsrace/wire"
)

// ProgressFn is called after every completed query task with the current
// round (1-based), the total number of rounds, and the number of
// completed versus total tasks of the current round. It is called from
// multiple worker goroutines and thus must be safe for concurrent use.
type ProgressFn func(round, rounds, done, total int)

// Benchmark measures a fixed set of resolver targets against the
// configured domain sets and produces ranked per-resolver statistics.
type Benchmark struct {
	targets  []types.ResolverTarget
	sets     DomainSets
	cfg      types.Config
	rng      *Rand
	progress ProgressFn
}

// Option can be passed to New when creating new [Benchmark] objects.
type Option func(*Benchmark)

// WithProgress registers a progress callback, typically feeding a live
// terminal display.
func WithProgress(fn ProgressFn) Option {
	return func(b *Benchmark) { b.progress = fn }
}

// WithRand overrides the benchmark's randomness source; without it the
// source is derived from the configured seed (or entropy).
func WithRand(rng *Rand) Option {
	return func(b *Benchmark) { b.rng = rng }
}

// New returns a Benchmark for the given resolver targets, domain sets and
// configuration.
func New(targets []types.ResolverTarget, sets DomainSets, cfg types.Config, options ...Option) *Benchmark {
	b := &Benchmark{
		targets: targets,
		sets:    sets,
		cfg:     cfg,
	}
	for _, opt := range options {
		opt(b)
	}
	if b.rng == nil {
		b.rng = newRand(cfg.Seed)
	}
	return b
}

// Run executes all benchmark rounds and returns the resolvers ranked by
// overall score, with statistical tie groups already detected. Individual
// query failures never abort a round: they surface as degraded aggregate
// statistics only.
func (b *Benchmark) Run() []stats.RankedResolver {
	tasks := buildTasks(b.targets, b.sets, b.cfg)
	log.Infof("benchmarking %d resolvers: %d queries across %d rounds",
		len(b.targets), len(tasks)*b.cfg.Rounds, b.cfg.Rounds)

	all := make([]taskResult, 0, len(tasks)*b.cfg.Rounds)
	for round := 1; round <= b.cfg.Rounds; round++ {
		all = append(all, b.runRound(round, tasks)...)
	}
	return b.rankResults(all)
}

// runRound shuffles its own copy of the task list, executes all tasks
// under the global admission gate, and collects the results after the
// round barrier. A task whose executing goroutine fails entirely is
// logged and excluded from aggregation; it never aborts the round.
func (b *Benchmark) runRound(round int, tasks []queryTask) []taskResult {
	log.Infof("round %d/%d", round, b.cfg.Rounds)
	shuffled := make([]queryTask, len(tasks))
	copy(shuffled, tasks)
	b.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// The completion channel is buffered for the full round so that no
	// task can ever block on reporting its result.
	results := make(chan taskResult, len(shuffled))
	var done int32
	pool := workerpool.New(b.cfg.MaxInflight)
	for _, task := range shuffled {
		task := task
		pool.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					log.Warnf("query task for %s (%s %s) failed: %v",
						task.target.Label, task.domain, task.kind, r)
				}
			}()
			b.execute(task, results)
			if b.progress != nil {
				b.progress(round, b.cfg.Rounds, int(atomic.AddInt32(&done, 1)), len(shuffled))
			}
		})
	}
	pool.StopWait()
	close(results)

	collected := make([]taskResult, 0, len(shuffled))
	for result := range results {
		collected = append(collected, result)
	}
	if lost := len(shuffled) - len(collected); lost > 0 {
		log.Warnf("round %d: %d task(s) did not report an outcome and are excluded", round, lost)
	}
	return collected
}

// execute runs a single query task: optional spacing delay (after gate
// admission, throttling egress without eating concurrency), fresh
// transaction id, query build, measured exchange. A domain that cannot be
// encoded short-circuits to a degenerate non-success, non-timeout
// outcome.
func (b *Benchmark) execute(task queryTask, results chan<- taskResult) {
	if b.cfg.Spacing > 0 {
		time.Sleep(b.cfg.Spacing)
	}
	txid := b.rng.TxID()
	query, err := wire.BuildQuery(task.domain, task.kind, txid, b.cfg.DNSSEC)
	if err != nil {
		log.Debugf("cannot encode query for %q: %v", task.domain, err)
		results <- taskResult{
			task: task,
			outcome: types.QueryOutcome{
				Resolver: task.target.Addr.String(),
				Domain:   task.domain,
				Kind:     task.kind,
			},
		}
		return
	}
	outcome := probe.Exchange(task.target.Addr, query, b.cfg.Timeout, txid, task.domain, task.kind)
	results <- taskResult{task: task, outcome: outcome}
}
