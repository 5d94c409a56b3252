package netio

import (
	"fmt"
	"net"
	"time"
)

// Loopback is an in-memory Interface used by unit and scenario tests: it
// exchanges packets with whatever peers it has been Linked to over buffered
// Go channels instead of a socket. Grounded on the teacher's in-memory
// data-plane link used to drive multi-node tests without real networking.
type Loopback struct {
	name          string
	ip            net.IP
	mask          net.IPMask
	mac           net.HardwareAddr
	helloInterval time.Duration

	recv chan []byte
	// peers maps a peer's IPv4 string to the peer's recv channel, so
	// SendTo can deliver directly without resolving ARP for real.
	peers map[string]chan []byte

	dropped int // packets discarded: no peer linked, or a peer's buffer full
}

// NewLoopback builds a Loopback interface with the given identity. Link it
// to its peers with Link before use.
func NewLoopback(name string, ip net.IP, mask net.IPMask, mac net.HardwareAddr, helloInterval time.Duration) *Loopback {
	return &Loopback{
		name:          name,
		ip:            ip.To4(),
		mask:          mask,
		mac:           mac,
		helloInterval: helloInterval,
		recv:          make(chan []byte, 64),
		peers:         make(map[string]chan []byte),
	}
}

// Link registers peer as reachable at peerIP over this interface, and
// symmetrically registers l as reachable from peer. Both interfaces must
// share the same simulated subnet.
func (l *Loopback) Link(peerIP net.IP, peer *Loopback) {
	l.peers[peerIP.To4().String()] = peer.recv
	peer.peers[l.ip.String()] = l.recv
}

func (l *Loopback) Name() string                 { return l.name }
func (l *Loopback) IP() net.IP                   { return l.ip }
func (l *Loopback) Mask() net.IPMask             { return l.mask }
func (l *Loopback) MAC() net.HardwareAddr        { return l.mac }
func (l *Loopback) HelloInterval() time.Duration { return l.helloInterval }
func (l *Loopback) Recv() <-chan []byte          { return l.recv }

// Send multicasts buf to every linked peer, mirroring a real multicast
// frame to 224.0.0.5 being delivered to everyone on the segment.
func (l *Loopback) Send(buf []byte) error {
	if len(l.peers) == 0 {
		l.dropped++
		return nil
	}
	cp := make([]byte, len(buf))
	copy(cp, buf)
	for _, ch := range l.peers {
		select {
		case ch <- cp:
		default:
			l.dropped++
		}
	}
	return nil
}

// SendTo delivers buf only to the peer at dst; ARP resolution is a no-op
// here since Link already records each peer's identity.
func (l *Loopback) SendTo(dst net.IP, buf []byte) error {
	ch, ok := l.peers[dst.To4().String()]
	if !ok {
		return fmt.Errorf("netio: loopback %s has no linked peer at %s", l.name, dst)
	}
	cp := make([]byte, len(buf))
	copy(cp, buf)
	select {
	case ch <- cp:
	default:
		l.dropped++
	}
	return nil
}

// Dropped reports how many packets were discarded because no peer was
// linked or a peer's receive buffer was full.
func (l *Loopback) Dropped() int { return l.dropped }
