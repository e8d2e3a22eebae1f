// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/siemens/dnsrace/stats"
)

// writeCSV exports the ranked results to a CSV file; the TLD columns are
// only present when TLD measurement was enabled.
func writeCSV(path string, ranked []stats.RankedResolver, withTLD bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write CSV file %q: %w", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)

	header := []string{
		"rank", "tie_group", "resolver", "addr", "overall_score",
	}
	header = append(header, setHeader("warm")...)
	header = append(header, setHeader("cold")...)
	if withTLD {
		header = append(header, setHeader("tld")...)
	}
	header = append(header, "success_rate", "intercepts_nxdomain")
	if err := w.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV file %q: %w", path, err)
	}

	for _, r := range ranked {
		s := r.Stats
		record := []string{
			strconv.Itoa(r.Rank),
			r.TieGroup,
			s.Label,
			s.Addr,
			fmt.Sprintf("%.2f", s.OverallScore),
		}
		record = append(record, setRecord(s.Warm)...)
		record = append(record, setRecord(s.Cold)...)
		if withTLD {
			if s.TLD != nil {
				record = append(record, setRecord(*s.TLD)...)
			} else {
				record = append(record, make([]string, len(setHeader("tld")))...)
			}
		}
		record = append(record,
			fmt.Sprintf("%.1f", s.SuccessRate),
			strconv.FormatBool(s.InterceptsNXDomain))
		if err := w.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV file %q: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot write CSV file %q: %w", path, err)
	}
	return nil
}

func setHeader(set string) []string {
	return []string{
		set + "_p50_ms", set + "_p95_ms", set + "_mean_ms", set + "_stddev_ms",
		set + "_success", set + "_timeout", set + "_total", set + "_score",
	}
}

func setRecord(s stats.SetStats) []string {
	return []string{
		fmt.Sprintf("%.2f", s.P50Millis),
		fmt.Sprintf("%.2f", s.P95Millis),
		fmt.Sprintf("%.2f", s.MeanMillis),
		fmt.Sprintf("%.2f", s.StddevMillis),
		strconv.Itoa(s.SuccessCount),
		strconv.Itoa(s.TimeoutCount),
		strconv.Itoa(s.TotalCount),
		fmt.Sprintf("%.2f", s.Score),
	}
}
