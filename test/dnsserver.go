// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package test provides an in-process stub DNS-over-UDP resolver for the
// package test suites, so tests never depend on real resolvers being
// reachable.
package test

import (
	"net"
	"net/netip"
	"sync"
	"time"

	"github.com/miekg/dns"
)

// Handler produces the response message for a received query, or nil to
// stay silent (simulating an unreachable or dead resolver).
type Handler func(query *dns.Msg) *dns.Msg

// Server is a stub DNS resolver listening on an ephemeral loopback UDP
// port.
type Server struct {
	conn    *net.UDPConn
	handler Handler
	delay   time.Duration
	prelude [][]byte
	done    sync.WaitGroup
}

// ServerOption can be passed to NewServer when creating stub [Server]
// objects.
type ServerOption func(*Server)

// WithDelay makes the server wait before answering, simulating resolver
// latency.
func WithDelay(d time.Duration) ServerOption {
	return func(s *Server) { s.delay = d }
}

// WithPrelude makes the server send the given raw datagrams to the
// client right before every proper response, simulating stray or forged
// traffic that a measurement must not mistake for its answer.
func WithPrelude(datagrams ...[]byte) ServerOption {
	return func(s *Server) { s.prelude = datagrams }
}

// NewServer starts a stub resolver answering via the given handler; stop
// it with Close when done.
func NewServer(handler Handler, options ...ServerOption) (*Server, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		return nil, err
	}
	s := &Server{
		conn:    conn,
		handler: handler,
	}
	for _, opt := range options {
		opt(s)
	}
	s.done.Add(1)
	go s.serve()
	return s, nil
}

// Addr returns the server's UDP address, for use as a resolver target
// address.
func (s *Server) Addr() netip.AddrPort {
	return s.conn.LocalAddr().(*net.UDPAddr).AddrPort()
}

// Close shuts the server down and waits for its serving goroutine to
// terminate.
func (s *Server) Close() {
	s.conn.Close()
	s.done.Wait()
}

func (s *Server) serve() {
	defer s.done.Done()
	buf := make([]byte, 4096)
	for {
		n, client, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			return // closed
		}
		query := new(dns.Msg)
		if err := query.Unpack(buf[:n]); err != nil {
			continue
		}
		if s.handler == nil {
			continue // dead resolver: never answer
		}
		response := s.handler(query)
		if response == nil {
			continue
		}
		raw, err := response.Pack()
		if err != nil {
			continue
		}
		go s.send(client, raw)
	}
}

// send delivers the prelude datagrams and then the (possibly delayed)
// response; it runs detached so a slow answer never blocks the receive
// loop.
func (s *Server) send(client *net.UDPAddr, response []byte) {
	for _, datagram := range s.prelude {
		_, _ = s.conn.WriteToUDP(datagram, client)
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	_, _ = s.conn.WriteToUDP(response, client)
}

// NoError returns a handler answering every query positively with a
// single A record (and NOERROR), regardless of the query kind.
func NoError() Handler {
	return func(query *dns.Msg) *dns.Msg {
		response := new(dns.Msg)
		response.SetReply(query)
		response.Answer = []dns.RR{&dns.A{
			Hdr: dns.RR_Header{
				Name:   query.Question[0].Name,
				Rrtype: dns.TypeA,
				Class:  dns.ClassINET,
				Ttl:    60,
			},
			A: net.IPv4(192, 0, 2, 1),
		}}
		return response
	}
}

// Rcode returns a handler answering every query with the given response
// code and an empty answer section.
func Rcode(rcode int) Handler {
	return func(query *dns.Msg) *dns.Msg {
		response := new(dns.Msg)
		response.SetRcode(query, rcode)
		return response
	}
}
