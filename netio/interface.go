// Package netio supplies the concrete bodies behind the Interface
// collaborator that the core treats as external (spec §1). The core never
// imports a concrete type from this package directly — it depends only on
// the Interface interface below, so it can be driven against Loopback in
// tests and against RawInterface in production without any code change.
package netio

import (
	"net"
	"time"
)

// Interface is the external collaborator spec §3 "Interface" describes:
// an IPv4 address, subnet mask, MAC, a hello interval, and send/receive
// primitives. Implementations must be safe for concurrent use by the
// daemon's background threads.
type Interface interface {
	Name() string
	IP() net.IP
	Mask() net.IPMask
	MAC() net.HardwareAddr
	HelloInterval() time.Duration

	// Send transmits buf, a complete mOSPF packet, to the AllSPFRouters
	// multicast group on this interface; the implementation supplies any
	// IP and link-layer framing.
	Send(buf []byte) error

	// SendTo transmits buf to dst, resolving dst's MAC via ARP first; an
	// implementation may queue the packet until resolution completes
	// (spec §6 "iface_send_packet_by_arp").
	SendTo(dst net.IP, buf []byte) error

	// Recv returns the channel of inbound mOSPF packets received on this
	// interface, with link-layer and IP headers already removed. The
	// channel is closed when the interface is torn down.
	Recv() <-chan []byte
}
