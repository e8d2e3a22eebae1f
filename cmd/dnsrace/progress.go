// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// A live single-line progress display for the benchmark rounds, plus yet
// another (braille) spinner.

package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/gosuri/uilive"
)

// liveProgress renders the benchmark's progress on a single continuously
// rewritten terminal line. The bench package reports completions from its
// worker goroutines via the update method; an own ticker goroutine
// repaints at a sedate pace so the terminal doesn't flicker.
type liveProgress struct {
	term   *uilive.Writer
	mu     sync.Mutex
	round  int
	rounds int
	done   int
	total  int
	stop   chan struct{}
	ended  sync.WaitGroup
	phases []string
	phase  int
}

// newLiveProgress returns a started liveProgress; call Stop to render the
// final state and release the repaint goroutine.
func newLiveProgress() *liveProgress {
	phases := []string{}
	for _, r := range "⠉⠘⠰⠤⠆⠃" {
		phases = append(phases, string(r))
	}
	p := &liveProgress{
		term:   uilive.New(),
		stop:   make(chan struct{}),
		phases: phases,
	}
	p.ended.Add(1)
	go p.repaint()
	return p
}

// update is the bench.ProgressFn callback; safe for concurrent use.
func (p *liveProgress) update(round, rounds, done, total int) {
	p.mu.Lock()
	p.round, p.rounds, p.done, p.total = round, rounds, done, total
	p.mu.Unlock()
}

// Stop renders one final progress state and stops the repaint goroutine.
func (p *liveProgress) Stop() {
	close(p.stop)
	p.ended.Wait()
}

func (p *liveProgress) repaint() {
	defer p.ended.Done()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.render(false)
		case <-p.stop:
			p.render(true)
			return
		}
	}
}

// render paints the current progress; the final rendering drops the
// spinner and flushes a completed line.
func (p *liveProgress) render(final bool) {
	p.mu.Lock()
	round, rounds, done, total := p.round, p.rounds, p.done, p.total
	p.phase++
	if p.phase >= len(p.phases) {
		p.phase = 0
	}
	spinner := p.phases[p.phase]
	p.mu.Unlock()
	if rounds == 0 {
		return // no progress report seen yet
	}
	if final {
		fmt.Fprintf(p.term, "benchmark done: %d rounds\n", rounds)
	} else {
		fmt.Fprint(p.term, progressStyle.Styled(
			fmt.Sprintf("%s round %d/%d: %d/%d queries\n",
				spinner, round, rounds, done, total)))
	}
	p.term.Flush()
}
