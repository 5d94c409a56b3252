//go:build linux

package netio

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/net/ipv4"
)

// mospfProto is the IP protocol number mOSPF packets are carried in (§6).
const mospfProto = 90

// allSPFRouters is the reserved multicast group mOSPF HELLOs target.
var allSPFRouters = net.IPv4(224, 0, 0, 5)

// RawInterface is the production Interface: a raw IPv4 socket bound to
// protocol 90, joined to 224.0.0.5 on one named interface, with multicast
// loopback disabled so our own sends never come back to us. Grounded on
// the raw/multicast socket setup of other_examples/mdlayher-ospf3__conn.go
// and other_examples/udhos-nexthop__router.go, both of which drive a
// hand-rolled routing protocol through golang.org/x/net/ipv4's PacketConn
// rather than bare syscalls.
type RawInterface struct {
	name          string
	ip            net.IP
	mask          net.IPMask
	mac           net.HardwareAddr
	helloInterval time.Duration

	pc      *ipv4.PacketConn
	recv    chan []byte
	closing chan struct{}
}

// NewRawInterface opens a raw protocol-90 socket, joins the AllSPFRouters
// multicast group on the named interface, and starts its receive pump.
func NewRawInterface(name string, ip net.IP, mask net.IPMask, mac net.HardwareAddr, helloInterval time.Duration) (*RawInterface, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return nil, fmt.Errorf("netio: lookup interface %s: %w", name, err)
	}

	conn, err := net.ListenPacket(fmt.Sprintf("ip4:%d", mospfProto), "0.0.0.0")
	if err != nil {
		return nil, fmt.Errorf("netio: open raw socket on %s: %w", name, err)
	}
	pc := ipv4.NewPacketConn(conn)

	if err := pc.JoinGroup(ifi, &net.IPAddr{IP: allSPFRouters}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("netio: join AllSPFRouters on %s: %w", name, err)
	}
	if err := pc.SetMulticastInterface(ifi); err != nil {
		conn.Close()
		return nil, fmt.Errorf("netio: set multicast interface %s: %w", name, err)
	}
	// Disabling loopback replaces a hand-assembled BPF self-filter: the
	// kernel simply never hands our own multicast sends back to us.
	if err := pc.SetMulticastLoopback(false); err != nil {
		conn.Close()
		return nil, fmt.Errorf("netio: disable multicast loopback on %s: %w", name, err)
	}

	ri := &RawInterface{
		name:          name,
		ip:            ip.To4(),
		mask:          mask,
		mac:           mac,
		helloInterval: helloInterval,
		pc:            pc,
		recv:          make(chan []byte, 256),
		closing:       make(chan struct{}),
	}

	go ri.recvLoop()
	return ri, nil
}

func (ri *RawInterface) recvLoop() {
	buf := make([]byte, 65535)
	for {
		select {
		case <-ri.closing:
			close(ri.recv)
			return
		default:
		}
		n, _, _, err := ri.pc.ReadFrom(buf)
		if err != nil {
			continue
		}
		cp := make([]byte, n)
		copy(cp, buf[:n])
		select {
		case ri.recv <- cp:
		default:
		}
	}
}

func (ri *RawInterface) Name() string                { return ri.name }
func (ri *RawInterface) IP() net.IP                   { return ri.ip }
func (ri *RawInterface) Mask() net.IPMask             { return ri.mask }
func (ri *RawInterface) MAC() net.HardwareAddr        { return ri.mac }
func (ri *RawInterface) HelloInterval() time.Duration { return ri.helloInterval }
func (ri *RawInterface) Recv() <-chan []byte          { return ri.recv }

func (ri *RawInterface) Send(buf []byte) error {
	return ri.sendTo(allSPFRouters, buf)
}

func (ri *RawInterface) SendTo(dst net.IP, buf []byte) error {
	return ri.sendTo(dst, buf)
}

func (ri *RawInterface) sendTo(dst net.IP, buf []byte) error {
	_, err := ri.pc.WriteTo(buf, nil, &net.IPAddr{IP: dst})
	return err
}

func (ri *RawInterface) Close() error {
	close(ri.closing)
	return ri.pc.Close()
}
