// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"net"
	"net/netip"
	"time"

	"github.com/miekg/dns"

	"github.com/siemens/dnsrace/types"
	"github.com/siemens/dnsrace/wire"
)

// nxdomainProbeName can never legitimately resolve: ".invalid" is
// reserved by RFC 2606 for exactly this kind of use.
const nxdomainProbeName = "resolver-honesty-check.invalid"

// InterceptsNXDomain probes the given resolver with a guaranteed
// non-existent name and reports whether the resolver fabricates a
// positive answer for it instead of returning the correct NXDOMAIN.
//
// The classification is deliberately conservative: only a response that
// decodes cleanly, carries NOERROR and has at least one A record in its
// answer section counts as interception. Timeouts, malformed responses
// and honest NXDOMAINs all classify the resolver as honest.
func InterceptsNXDomain(resolver netip.AddrPort, timeout time.Duration) bool {
	txid := dns.Id()
	query, err := wire.BuildQuery(nxdomainProbeName, types.QueryA, txid, false)
	if err != nil {
		return false
	}
	network := "udp4"
	if resolver.Addr().Unmap().Is6() {
		network = "udp6"
	}
	conn, err := net.ListenUDP(network, nil)
	if err != nil {
		return false
	}
	defer conn.Close()
	if _, err := conn.WriteToUDP(query, net.UDPAddrFromAddrPort(resolver)); err != nil {
		return false
	}
	// A single receive attempt suffices here; this is a behavioral probe,
	// not a latency measurement.
	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	buf := make([]byte, wire.MaxResponseSize)
	n, _, err := conn.ReadFromUDP(buf)
	if err != nil {
		return false
	}
	resp, err := wire.ParseResponse(buf[:n], txid)
	if err != nil {
		return false
	}
	return resp.Rcode == dns.RcodeSuccess && resp.HasA
}
