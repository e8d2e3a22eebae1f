// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package wire

import (
	"strings"

	"github.com/miekg/dns"

	"github.com/siemens/dnsrace/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("DNS wire codec", func() {

	Context("building queries", func() {

		It("serializes an A query with the transaction id up front", func() {
			raw := Successful(BuildQuery("example.com", types.QueryA, 1234, false))
			Expect(len(raw)).To(BeNumerically(">=", 12), "DNS header is 12 bytes minimum")
			// transaction id sits in the first two bytes, big-endian.
			Expect(raw[0]).To(Equal(byte(1234 >> 8)))
			Expect(raw[1]).To(Equal(byte(1234 & 0xff)))
		})

		It("sets the recursion-desired bit and a single question", func() {
			raw := Successful(BuildQuery("example.com", types.QueryAAAA, 5678, false))
			msg := new(dns.Msg)
			Expect(msg.Unpack(raw)).To(Succeed())
			Expect(msg.RecursionDesired).To(BeTrue())
			Expect(msg.Question).To(HaveLen(1))
			Expect(msg.Question[0].Name).To(Equal("example.com."))
			Expect(msg.Question[0].Qtype).To(Equal(dns.TypeAAAA))
			Expect(msg.IsEdns0()).To(BeNil(), "no OPT record without DNSSEC")
		})

		It("adds an EDNS0 OPT record with the DO bit in DNSSEC mode", func() {
			raw := Successful(BuildQuery("example.com", types.QueryA, 42, true))
			msg := new(dns.Msg)
			Expect(msg.Unpack(raw)).To(Succeed())
			opt := msg.IsEdns0()
			Expect(opt).NotTo(BeNil())
			Expect(opt.Do()).To(BeTrue())
		})

		It("rejects domain names that cannot be encoded", func() {
			_, err := BuildQuery(strings.Repeat("x", 64)+".example.com", types.QueryA, 1, false)
			Expect(err).To(HaveOccurred())
		})

	})

	Context("parsing responses", func() {

		// response returns the query bytes re-serialized with the
		// message type flipped to "response".
		response := func(raw []byte) []byte {
			msg := new(dns.Msg)
			Expect(msg.Unpack(raw)).To(Succeed())
			msg.Response = true
			return Successful(msg.Pack())
		}

		It("round-trips a query flipped into a response", func() {
			raw := Successful(BuildQuery("example.com", types.QueryA, 9999, false))
			resp := Successful(ParseResponse(response(raw), 9999))
			Expect(resp.Rcode).To(Equal(dns.RcodeSuccess))
			Expect(resp.RcodeText).To(Equal("NOERROR"))
			Expect(resp.AnswerCount).To(BeZero())
			Expect(resp.HasA).To(BeFalse())
		})

		It("rejects a mismatching transaction id", func() {
			raw := Successful(BuildQuery("example.com", types.QueryA, 1111, false))
			_, err := ParseResponse(response(raw), 2222)
			Expect(err).To(MatchError(ErrTxIDMismatch))
		})

		It("rejects a message claiming to be a query", func() {
			raw := Successful(BuildQuery("example.com", types.QueryA, 777, false))
			_, err := ParseResponse(raw, 777)
			Expect(err).To(MatchError(ErrNotAResponse))
		})

		It("rejects garbage", func() {
			_, err := ParseResponse([]byte{0, 1, 2, 3, 4}, 0)
			Expect(err).To(HaveOccurred())
		})

		It("spots A records in the answer section", func() {
			query := new(dns.Msg)
			query.SetQuestion("example.com.", dns.TypeA)
			query.Id = 4711
			reply := new(dns.Msg)
			reply.SetReply(query)
			reply.Answer = []dns.RR{Successful(dns.NewRR("example.com. 60 IN A 192.0.2.1"))}
			resp := Successful(ParseResponse(Successful(reply.Pack()), 4711))
			Expect(resp.AnswerCount).To(Equal(1))
			Expect(resp.HasA).To(BeTrue())
		})

	})

})
