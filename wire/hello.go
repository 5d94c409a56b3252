package wire

import (
	"encoding/binary"
	"fmt"
)

// HelloLen is the size in bytes of the HELLO payload (§6).
const HelloLen = 8

// Hello is the 8-byte HELLO payload: subnet mask, hello interval in
// seconds, and 2 bytes of zero padding.
type Hello struct {
	Mask          uint32
	HelloInterval uint16
}

func (h Hello) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HelloLen)
	binary.BigEndian.PutUint32(buf[0:4], h.Mask)
	binary.BigEndian.PutUint16(buf[4:6], h.HelloInterval)
	// buf[6:8] pad, already zero
	return buf, nil
}

func (h *Hello) UnmarshalBinary(buf []byte) error {
	if len(buf) < HelloLen {
		return fmt.Errorf("wire: hello payload too short: %d bytes", len(buf))
	}
	h.Mask = binary.BigEndian.Uint32(buf[0:4])
	h.HelloInterval = binary.BigEndian.Uint16(buf[4:6])
	return nil
}

// BuildHello assembles a complete, checksummed HELLO packet.
func BuildHello(routerID, areaID uint32, mask uint32, helloIntervalSecs uint16) ([]byte, error) {
	hello := Hello{Mask: mask, HelloInterval: helloIntervalSecs}
	payload, err := hello.MarshalBinary()
	if err != nil {
		return nil, err
	}
	hdr := Header{
		Version:  WireVersion,
		Type:     TypeHello,
		Length:   uint16(HeaderLen + len(payload)),
		RouterID: routerID,
		AreaID:   areaID,
	}
	hdrBytes, _ := hdr.MarshalBinary()
	buf := append(hdrBytes, payload...)
	return WithChecksum(buf), nil
}

// WireVersion mirrors state.WireVersion without importing state, so the
// codec has no dependency on the core's data model.
const WireVersion = 2
