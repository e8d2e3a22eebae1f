// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/gammazero/workerpool"
	log "github.com/sirupsen/logrus"

	"github.com/siemens/dnsrace/probe"
	"github.com/siemens/dnsrace/types"
)

// characterizeWorkers bounds the concurrent NXDOMAIN probes; the probes
// are quick one-shot affairs, so this is independent of the benchmark's
// own in-flight limit.
const characterizeWorkers = 32

// Characterize probes every target once for NXDOMAIN interception and
// sets the targets' InterceptsNXDomain flags in place. It runs before the
// benchmark rounds and is never part of the round loop.
func Characterize(targets []types.ResolverTarget, timeout time.Duration) {
	log.Infof("checking NXDOMAIN interception (%d resolvers)", len(targets))
	pool := workerpool.New(characterizeWorkers)
	for i := range targets {
		i := i
		pool.Submit(func() {
			targets[i].InterceptsNXDomain = probe.InterceptsNXDomain(targets[i].Addr, timeout)
			log.Debugf("%s (%s): intercepts=%v",
				targets[i].Label, targets[i].Addr, targets[i].InterceptsNXDomain)
		})
	}
	pool.StopWait()
}
