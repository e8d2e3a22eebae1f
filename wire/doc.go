// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package wire builds the DNS query messages the benchmark sends and parses
the responses it receives, without ever touching the network itself.

Building produces the minimal valid serialized query: a single question
with the recursion-desired bit set and, in DNSSEC mode, an EDNS0 OPT
pseudo-record with the DNSSEC-OK bit. Parsing validates that the raw bytes
decode as a DNS message, that the transaction id matches the query the
caller sent, and that the message actually is a response and not a
reflected query; anything else is rejected so that stray or forged
datagrams never get misattributed to a measurement.

Message packing and unpacking is delegated to the excellent [miekg/dns]
module; domain names are IDNA-encoded first.

[miekg/dns]: https://github.com/miekg/dns
*/
package wire
