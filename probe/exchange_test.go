// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"time"

	"github.com/miekg/dns"

	"github.com/siemens/dnsrace/test"
	"github.com/siemens/dnsrace/types"
	"github.com/siemens/dnsrace/wire"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("UDP query exchanges", func() {

	const txid = uint16(0x4711)

	query := func() []byte {
		return Successful(wire.BuildQuery("example.com", types.QueryA, txid, false))
	}

	It("measures a successful exchange", func() {
		srv := Successful(test.NewServer(test.NoError(), test.WithDelay(20*time.Millisecond)))
		defer srv.Close()

		outcome := Exchange(srv.Addr(), query(), time.Second, txid, "example.com", types.QueryA)
		Expect(outcome.Success).To(BeTrue())
		Expect(outcome.Timeout).To(BeFalse())
		Expect(outcome.Rcode).To(Equal("NOERROR"))
		Expect(outcome.Domain).To(Equal("example.com"))
		Expect(outcome.Resolver).To(Equal(srv.Addr().String()))
		Expect(outcome.Latency).To(BeNumerically(">=", 20*time.Millisecond))
		Expect(outcome.Latency).To(BeNumerically("<", time.Second))
	})

	It("records a negative answer as unsuccessful, but not as a timeout", func() {
		srv := Successful(test.NewServer(test.Rcode(dns.RcodeServerFailure)))
		defer srv.Close()

		outcome := Exchange(srv.Addr(), query(), time.Second, txid, "example.com", types.QueryA)
		Expect(outcome.Success).To(BeFalse())
		Expect(outcome.Timeout).To(BeFalse())
		Expect(outcome.Rcode).To(Equal("SERVFAIL"))
	})

	It("skips stray datagrams and keeps waiting for the real answer", func() {
		// a syntactically valid response, but for someone else's exchange.
		stray := new(dns.Msg)
		stray.SetQuestion("somewhere.else.example.org.", dns.TypeA)
		stray.Response = true
		stray.Id = txid + 1

		srv := Successful(test.NewServer(test.NoError(),
			test.WithPrelude([]byte{0xde, 0xad}, Successful(stray.Pack()))))
		defer srv.Close()

		outcome := Exchange(srv.Addr(), query(), time.Second, txid, "example.com", types.QueryA)
		Expect(outcome.Success).To(BeTrue())
		Expect(outcome.Timeout).To(BeFalse())
	})

	It("times out on a resolver that never answers", func() {
		srv := Successful(test.NewServer(nil))
		defer srv.Close()

		timeout := 100 * time.Millisecond
		outcome := Exchange(srv.Addr(), query(), timeout, txid, "example.com", types.QueryA)
		Expect(outcome.Success).To(BeFalse())
		Expect(outcome.Timeout).To(BeTrue())
		Expect(outcome.Latency).To(BeNumerically(">=", timeout))
	})

})
