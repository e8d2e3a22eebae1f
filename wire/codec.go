// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package wire

import (
	"errors"
	"fmt"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/siemens/dnsrace/types"
)

// MaxResponseSize is the receive buffer size for responses; large enough
// to capture EDNS-extended responses without truncation in the common
// case.
const MaxResponseSize = 4096

// Parse errors returned by ParseResponse.
var (
	// ErrTxIDMismatch means the response carried a transaction id other
	// than the one of the query we sent.
	ErrTxIDMismatch = errors.New("transaction id mismatch")
	// ErrNotAResponse means the message claims to be a query rather than
	// a response.
	ErrNotAResponse = errors.New("message is a query, not a response")
)

// BuildQuery serializes a DNS query for the given domain and query kind,
// with the given transaction id and the recursion-desired bit set. With
// dnssec enabled the query additionally carries an EDNS0 OPT record with
// the DNSSEC-OK bit. It fails if the domain name cannot be encoded.
func BuildQuery(domain string, kind types.QueryKind, txid uint16, dnssec bool) ([]byte, error) {
	punyname, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return nil, fmt.Errorf("invalid domain name %q: %w", domain, err)
	}
	punyname = dns.Fqdn(punyname)
	if _, ok := dns.IsDomainName(punyname); !ok {
		return nil, fmt.Errorf("invalid domain name %q", domain)
	}
	msg := new(dns.Msg)
	msg.Id = txid
	msg.RecursionDesired = true
	msg.Question = []dns.Question{{
		Name:   punyname,
		Qtype:  uint16(kind),
		Qclass: dns.ClassINET,
	}}
	if dnssec {
		msg.SetEdns0(MaxResponseSize, true)
	}
	raw, err := msg.Pack()
	if err != nil {
		return nil, fmt.Errorf("cannot serialize DNS query for %q: %w", domain, err)
	}
	return raw, nil
}

// Response is the information extracted from a successfully parsed and
// validated DNS response.
type Response struct {
	Rcode       int    // numeric response code
	RcodeText   string // human-readable response code, such as "NOERROR"
	AnswerCount int
	HasA        bool // at least one answer record is an A record
}

// ParseResponse decodes raw response bytes, validating them against the
// expected transaction id. It fails if the bytes are not a valid DNS
// message, if the transaction id differs ([ErrTxIDMismatch]), or if the
// message is a query instead of a response ([ErrNotAResponse]).
func ParseResponse(raw []byte, txid uint16) (*Response, error) {
	msg := new(dns.Msg)
	if err := msg.Unpack(raw); err != nil {
		return nil, fmt.Errorf("cannot parse DNS response: %w", err)
	}
	if msg.Id != txid {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrTxIDMismatch, txid, msg.Id)
	}
	if !msg.Response {
		return nil, ErrNotAResponse
	}
	hasA := false
	for _, rr := range msg.Answer {
		if _, ok := rr.(*dns.A); ok {
			hasA = true
			break
		}
	}
	return &Response{
		Rcode:       msg.Rcode,
		RcodeText:   rcodeText(msg.Rcode),
		AnswerCount: len(msg.Answer),
		HasA:        hasA,
	}, nil
}

// rcodeText returns the textual form of a response code, falling back to
// the numeric value for codes miekg/dns doesn't know by name.
func rcodeText(rcode int) string {
	if text, ok := dns.RcodeToString[rcode]; ok {
		return text
	}
	return fmt.Sprintf("RCODE%d", rcode)
}
