// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package bench

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// Rand is the benchmark's single source of randomness for shuffling task
// lists and generating DNS transaction ids. It is either deterministically
// seeded ([NewSeededRand]) for reproducible benchmarking or entropy-seeded
// ([NewEntropyRand]), and is safe for concurrent use.
type Rand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRand returns a Rand producing the same shuffle and transaction
// id sequence for the same seed on every run.
func NewSeededRand(seed uint64) *Rand {
	return &Rand{rnd: rand.New(rand.NewSource(int64(seed)))}
}

// NewEntropyRand returns a Rand seeded from the system entropy source.
func NewEntropyRand() *Rand {
	var buf [8]byte
	_, _ = crand.Read(buf[:])
	return &Rand{rnd: rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(buf[:]))))}
}

// newRand picks the seeded or the entropy flavor depending on whether an
// explicit seed has been configured.
func newRand(seed *uint64) *Rand {
	if seed != nil {
		return NewSeededRand(*seed)
	}
	return NewEntropyRand()
}

// Shuffle pseudo-randomizes the order of n elements using the given swap
// function.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rnd.Shuffle(n, swap)
}

// TxID returns a fresh 16-bit DNS transaction id.
func (r *Rand) TxID() uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint16(r.rnd.Intn(1 << 16))
}
