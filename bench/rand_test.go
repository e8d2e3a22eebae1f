// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package bench

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("benchmark randomness", func() {

	sequence := func(r *Rand, n int) []uint16 {
		ids := make([]uint16, n)
		for i := range ids {
			ids[i] = r.TxID()
		}
		return ids
	}

	permutation := func(r *Rand, n int) []int {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		r.Shuffle(n, func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})
		return perm
	}

	It("reproduces the same transaction id sequence for the same seed", func() {
		Expect(sequence(NewSeededRand(42), 16)).To(
			Equal(sequence(NewSeededRand(42), 16)))
	})

	It("reproduces the same shuffle for the same seed", func() {
		Expect(permutation(NewSeededRand(42), 100)).To(
			Equal(permutation(NewSeededRand(42), 100)))
	})

	It("derives the flavor from the configured seed", func() {
		seed := uint64(7)
		Expect(sequence(newRand(&seed), 8)).To(
			Equal(sequence(NewSeededRand(7), 8)))
		Expect(newRand(nil)).NotTo(BeNil())
	})

})
