// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"bufio"
	"fmt"
	"net/netip"
	"os"
	"strings"
)

// DefaultDNSPort is the UDP port assumed when a resolver address string
// doesn't carry an explicit port.
const DefaultDNSPort = 53

// ResolverTarget identifies one DNS resolver under test: a display label
// plus the UDP address queries get sent to. InterceptsNXDomain is set once
// by the NXDOMAIN characterization probe and consulted read-only
// afterwards.
type ResolverTarget struct {
	Label              string         `json:"label"`
	Addr               netip.AddrPort `json:"addr"`
	InterceptsNXDomain bool           `json:"intercepts_nxdomain"`
}

// ParseResolver parses a resolver address string into a ResolverTarget.
//
// Supported formats:
//
//	"1.1.1.1"              IPv4, default port 53
//	"1.1.1.1:53"           IPv4 with explicit port
//	"2606:4700::1111"      bare IPv6, default port 53
//	"[2606:4700::1111]:53" bracketed IPv6 with port
func ParseResolver(input string) (ResolverTarget, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ResolverTarget{}, fmt.Errorf("empty resolver address")
	}
	var addrport netip.AddrPort
	switch {
	case strings.HasPrefix(trimmed, "["):
		// bracketed IPv6 with port, such as "[::1]:53".
		ap, err := netip.ParseAddrPort(trimmed)
		if err != nil {
			return ResolverTarget{}, fmt.Errorf("invalid bracketed IPv6 address %q: %w", trimmed, err)
		}
		addrport = ap
	case strings.Count(trimmed, ":") > 1:
		// bare IPv6 address without port.
		addr, err := netip.ParseAddr(trimmed)
		if err != nil {
			return ResolverTarget{}, fmt.Errorf("invalid IPv6 address %q: %w", trimmed, err)
		}
		addrport = netip.AddrPortFrom(addr, DefaultDNSPort)
	default:
		if ap, err := netip.ParseAddrPort(trimmed); err == nil {
			// IPv4 with port, such as "8.8.8.8:5353".
			addrport = ap
			break
		}
		addr, err := netip.ParseAddr(trimmed)
		if err != nil {
			return ResolverTarget{}, fmt.Errorf("invalid IP address %q: %w", trimmed, err)
		}
		addrport = netip.AddrPortFrom(addr, DefaultDNSPort)
	}
	return ResolverTarget{
		Label: addrport.Addr().String(),
		Addr:  addrport,
	}, nil
}

// ReadResolverFile reads resolver addresses from a file, one per line.
// Blank lines and lines starting with '#' are skipped.
func ReadResolverFile(path string) ([]ResolverTarget, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read resolver file %q: %w", path, err)
	}
	defer f.Close()
	var targets []ResolverTarget
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		target, err := ParseResolver(line)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read resolver file %q: %w", path, err)
	}
	return targets, nil
}

// SystemResolvers returns the nameservers listed in /etc/resolv.conf; it
// returns an empty list if the file cannot be read (such as on non-Unix
// platforms).
func SystemResolvers() []ResolverTarget {
	content, err := os.ReadFile("/etc/resolv.conf")
	if err != nil {
		return nil
	}
	var targets []ResolverTarget
	for _, line := range strings.Split(string(content), "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 2 || fields[0] != "nameserver" {
			continue
		}
		if target, err := ParseResolver(fields[1]); err == nil {
			targets = append(targets, target)
		}
	}
	return targets
}

// DefaultResolvers returns the built-in list of well-known public
// resolvers, used when no resolvers have been specified at all.
func DefaultResolvers() []ResolverTarget {
	return []ResolverTarget{
		{Label: "Cloudflare", Addr: netip.MustParseAddrPort("1.1.1.1:53")},
		{Label: "Google", Addr: netip.MustParseAddrPort("8.8.8.8:53")},
		{Label: "Quad9", Addr: netip.MustParseAddrPort("9.9.9.9:53")},
		{Label: "OpenDNS", Addr: netip.MustParseAddrPort("208.67.222.222:53")},
	}
}
