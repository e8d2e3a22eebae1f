// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package stats

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("latency statistics", func() {

	Context("nearest-rank percentiles", func() {

		It("picks the nearest rank", func() {
			sample := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
			Expect(Percentile(sample, 50)).To(Equal(5.0))
			Expect(Percentile(sample, 95)).To(Equal(10.0))
			Expect(Percentile(sample, 10)).To(Equal(1.0))
		})

		It("returns zero for an empty sample", func() {
			Expect(Percentile(nil, 50)).To(BeZero())
		})

		It("returns the only value of a single-element sample", func() {
			Expect(Percentile([]float64{42}, 50)).To(Equal(42.0))
			Expect(Percentile([]float64{42}, 95)).To(Equal(42.0))
		})

	})

	It("computes mean and population standard deviation", func() {
		Expect(Mean([]float64{1, 2, 3, 4, 5})).To(Equal(3.0))
		Expect(Stddev([]float64{2, 4, 4, 4, 5, 5, 7, 9})).To(BeNumerically("~", 2.0, 0.01))
	})

	Context("set statistics", func() {

		It("yields all-zero statistics for no samples at all", func() {
			s := ComputeSetStats(nil, 0, 0, 0, 5000)
			Expect(s.P50Millis).To(BeZero())
			Expect(s.P95Millis).To(BeZero())
			Expect(s.MeanMillis).To(BeZero())
			Expect(s.StddevMillis).To(BeZero())
			Expect(s.Score).To(BeZero())
		})

		It("scores without timeouts as median plus half the tail spread", func() {
			latencies := make([]float64, 100)
			for i := range latencies {
				// p50 = 20, p95 = 50 under nearest-rank
				switch {
				case i < 50:
					latencies[i] = 20
				case i < 95:
					latencies[i] = 50
				default:
					latencies[i] = 60
				}
			}
			s := ComputeSetStats(latencies, 100, 0, 100, 5000)
			Expect(s.P50Millis).To(Equal(20.0))
			Expect(s.P95Millis).To(Equal(50.0))
			// 20 + 0.5*(50-20) + 5000*0 = 35
			Expect(s.Score).To(BeNumerically("~", 35.0, 0.01))
		})

		It("penalizes timeouts linearly in the timeout rate", func() {
			s := SetStats{
				P50Millis:    20,
				P95Millis:    50,
				SuccessCount: 90,
				TimeoutCount: 10,
				TotalCount:   100,
			}
			// 20 + 0.5*(50-20) + 5000*0.1 = 535
			Expect(setScore(s, 5000)).To(BeNumerically("~", 535.0, 0.01))
		})

		It("sorts the sample itself without mutating the caller's slice", func() {
			latencies := []float64{30, 10, 20}
			s := ComputeSetStats(latencies, 3, 0, 3, 5000)
			Expect(s.P50Millis).To(Equal(20.0))
			Expect(latencies).To(Equal([]float64{30, 10, 20}))
		})

	})

	Context("uncertainty", func() {

		It("scales the median absolute deviation by 1.4826", func() {
			sample := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
			// median 5, MAD 2
			Expect(Uncertainty(sample)).To(BeNumerically("~", 2.9652, 0.0001))
		})

		It("yields zero for degenerate samples", func() {
			Expect(Uncertainty(nil)).To(BeZero())
			Expect(Uncertainty([]float64{7})).To(BeZero())
		})

	})

})
