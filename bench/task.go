// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package bench

import "github.com/siemens/dnsrace/types"

// The named domain sets a query task can belong to.
const (
	SetWarm = "warm"
	SetCold = "cold"
	SetTLD  = "tld"
)

// DomainSets are the domain names to benchmark, per named set. The TLD
// set is only queried when enabled in the configuration.
type DomainSets struct {
	Warm []string
	Cold []string
	TLD  []string
}

// queryTask is one unit of benchmark work: query one resolver for one
// domain with one query kind, on behalf of one named set. Tasks are
// immutable once created; each round shuffles its own copy of the full
// task list.
type queryTask struct {
	target types.ResolverTarget
	domain string
	kind   types.QueryKind
	set    string
}

// taskResult pairs a task with its outcome on the completion channel.
type taskResult struct {
	task    queryTask
	outcome types.QueryOutcome
}

// buildTasks expands the cross-product of resolvers × domains × query
// kinds × enabled sets into the full task list of a single round.
func buildTasks(targets []types.ResolverTarget, sets DomainSets, cfg types.Config) []queryTask {
	kinds := []types.QueryKind{types.QueryA}
	if cfg.QueryAAAA {
		kinds = append(kinds, types.QueryAAAA)
	}
	var tasks []queryTask
	add := func(target types.ResolverTarget, domains []string, set string) {
		for _, domain := range domains {
			for _, kind := range kinds {
				tasks = append(tasks, queryTask{
					target: target,
					domain: domain,
					kind:   kind,
					set:    set,
				})
			}
		}
	}
	for _, target := range targets {
		add(target, sets.Warm, SetWarm)
		add(target, sets.Cold, SetCold)
		if cfg.QueryTLD {
			add(target, sets.TLD, SetTLD)
		}
	}
	return tasks
}
