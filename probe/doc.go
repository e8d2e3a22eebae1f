// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package probe sends single DNS queries over UDP and measures them.

[Exchange] is the measurement primitive: it binds a fresh UDP socket
scoped to this one call, sends the already-serialized query, and then
waits for a response with a matching transaction id, retrying the receive
on mismatching or malformed datagrams within the remaining deadline. The
dedicated socket per query, instead of one shared socket per resolver,
is the property that keeps concurrently outstanding measurements from
stealing each other's responses; the per-query setup cost is the price of
strictly isolated measurements, and we gladly pay it.

[InterceptsNXDomain] probes a resolver once with a name under the
reserved ".invalid" pseudo-TLD that can never legitimately resolve; a
resolver fabricating a positive answer for it is flagged as intercepting
NXDOMAIN.
*/
package probe
