// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package stats

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ranking and tie detection", func() {

	It("ranks ascending by overall score", func() {
		ranked := Rank([]ResolverStats{
			{Label: "slow", OverallScore: 100},
			{Label: "fast", OverallScore: 10},
			{Label: "medium", OverallScore: 50},
		})
		Expect(ranked).To(HaveLen(3))
		Expect(ranked[0].Rank).To(Equal(1))
		Expect(ranked[0].Stats.Label).To(Equal("fast"))
		Expect(ranked[1].Rank).To(Equal(2))
		Expect(ranked[1].Stats.Label).To(Equal("medium"))
		Expect(ranked[2].Rank).To(Equal(3))
		Expect(ranked[2].Stats.Label).To(Equal("slow"))
	})

	It("groups adjacent resolvers within their uncertainty bands", func() {
		ranked := Rank([]ResolverStats{
			{Label: "a", OverallScore: 10},
			{Label: "b", OverallScore: 11},
			{Label: "c", OverallScore: 50},
		})
		DetectTies(ranked, []float64{5, 5, 0.1})
		Expect(ranked[0].TieGroup).To(Equal("1-2"))
		Expect(ranked[1].TieGroup).To(Equal("1-2"))
		Expect(ranked[2].TieGroup).To(BeEmpty())
	})

	It("merges tied adjacency transitively into one group", func() {
		// a and c would not tie directly (diff 8 ≥ 1+1), but both tie
		// with the wide-banded b in the middle; the contiguous run
		// becomes one group.
		ranked := Rank([]ResolverStats{
			{Label: "a", OverallScore: 10},
			{Label: "b", OverallScore: 14},
			{Label: "c", OverallScore: 18},
		})
		DetectTies(ranked, []float64{1, 4, 1})
		Expect(ranked[0].TieGroup).To(Equal("1-3"))
		Expect(ranked[1].TieGroup).To(Equal("1-3"))
		Expect(ranked[2].TieGroup).To(Equal("1-3"))
	})

	It("leaves singletons unlabeled", func() {
		ranked := Rank([]ResolverStats{
			{Label: "a", OverallScore: 10},
			{Label: "b", OverallScore: 100},
		})
		DetectTies(ranked, []float64{1, 1})
		Expect(ranked[0].TieGroup).To(BeEmpty())
		Expect(ranked[1].TieGroup).To(BeEmpty())
	})

	It("keeps equal scores in their incoming order", func() {
		ranked := Rank([]ResolverStats{
			{Label: "first", OverallScore: 10},
			{Label: "second", OverallScore: 10},
		})
		Expect(ranked[0].Stats.Label).To(Equal("first"))
		Expect(ranked[1].Stats.Label).To(Equal("second"))
	})

	It("ignores misaligned uncertainty slices", func() {
		ranked := Rank([]ResolverStats{{Label: "a", OverallScore: 1}})
		DetectTies(ranked, nil)
		Expect(ranked[0].TieGroup).To(BeEmpty())
	})

})
