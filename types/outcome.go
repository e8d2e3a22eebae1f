// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"time"

	"github.com/miekg/dns"
)

// QueryKind is the DNS record type queried for; the benchmark only ever
// asks for addresses, so this is limited to A and AAAA.
type QueryKind uint16

// The supported query kinds.
const (
	QueryA    = QueryKind(dns.TypeA)
	QueryAAAA = QueryKind(dns.TypeAAAA)
)

// String returns the clear-text representation of a QueryKind value.
func (k QueryKind) String() string {
	switch k {
	case QueryA:
		return "A"
	case QueryAAAA:
		return "AAAA"
	}
	return fmt.Sprintf("QueryKind(%d)", uint16(k))
}

// QueryOutcome is the result of executing a single DNS query against a
// single resolver. Exactly one of the following characterizes an outcome:
// Success is set (rcode was NOERROR), Timeout is set (no valid matching
// response arrived in time), or Rcode carries a distinguishable
// non-NOERROR response code.
type QueryOutcome struct {
	Resolver string        `json:"resolver"` // resolver address the query went to
	Domain   string        `json:"domain"`
	Kind     QueryKind     `json:"kind"`
	Rcode    string        `json:"rcode,omitempty"` // empty when no valid response arrived
	Latency  time.Duration `json:"latency"`
	Success  bool          `json:"success"`
	Timeout  bool          `json:"timeout"`
}
