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

// recvAttempts is the receive-retry budget per query: stray datagrams
// with a wrong transaction id or garbage payload don't terminate the
// query, but we also don't wait for matching datagrams forever.
const recvAttempts = 3

// Exchange sends one serialized DNS query to the given resolver over a
// dedicated UDP socket and waits for a response whose transaction id
// matches txid, up to the given timeout. It never fails: transport setup
// errors, deadline expiry and exhausted receive retries all degrade into
// a timeout outcome, so that every query task accounts for exactly one
// outcome.
func Exchange(resolver netip.AddrPort, query []byte, timeout time.Duration,
	txid uint16, domain string, kind types.QueryKind,
) types.QueryOutcome {
	network := "udp4"
	if resolver.Addr().Unmap().Is6() {
		network = "udp6"
	}
	conn, err := net.ListenUDP(network, nil)
	if err != nil {
		return timeoutOutcome(resolver, domain, kind, timeout)
	}
	defer conn.Close()

	// Timing starts immediately around send+recv, not around the bind.
	start := time.Now()
	if _, err := conn.WriteToUDP(query, net.UDPAddrFromAddrPort(resolver)); err != nil {
		return timeoutOutcome(resolver, domain, kind, timeout)
	}

	buf := make([]byte, wire.MaxResponseSize)
	for attempt := 0; attempt < recvAttempts; attempt++ {
		if time.Since(start) >= timeout {
			break
		}
		_ = conn.SetReadDeadline(start.Add(timeout))
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			// receive timeout or socket error
			break
		}
		resp, err := wire.ParseResponse(buf[:n], txid)
		if err != nil {
			// txid mismatch or malformed datagram: noise from a stray,
			// forged or delayed exchange; keep waiting without
			// re-sending.
			continue
		}
		return types.QueryOutcome{
			Resolver: resolver.String(),
			Domain:   domain,
			Kind:     kind,
			Rcode:    resp.RcodeText,
			Latency:  time.Since(start),
			Success:  resp.Rcode == dns.RcodeSuccess,
		}
	}
	out := timeoutOutcome(resolver, domain, kind, timeout)
	out.Latency = time.Since(start)
	return out
}

// timeoutOutcome is the degenerate outcome for queries that never saw a
// valid matching response; its latency defaults to the full configured
// timeout for queries that failed before timing even started.
func timeoutOutcome(resolver netip.AddrPort, domain string, kind types.QueryKind,
	timeout time.Duration,
) types.QueryOutcome {
	return types.QueryOutcome{
		Resolver: resolver.String(),
		Domain:   domain,
		Kind:     kind,
		Latency:  timeout,
		Timeout:  true,
	}
}
