// Package wire implements the mOSPF binary wire format specified in spec
// §6: fixed-width headers written in network byte order with a
// ones'-complement checksum, in the style of the fixed OSPF/BFD headers
// hand-rolled with encoding/binary elsewhere in the retrieval pack, rather
// than a self-describing codec like protobuf — the checksummed, exact-byte
// layout these protocols share rules that out.
package wire

import (
	"encoding/binary"
	"fmt"
)

// Packet types (§6).
const (
	TypeHello uint8 = 1
	TypeLSU   uint8 = 4
)

// HeaderLen is the size in bytes of the common mOSPF header.
const HeaderLen = 24

// Header is the 24-byte common mOSPF header prefixing every packet.
type Header struct {
	Version  uint8
	Type     uint8
	Length   uint16 // header + payload
	RouterID uint32
	AreaID   uint32
	Checksum uint16
	// Bytes [14:24] follow Checksum on the wire and are always zero.
}

// MarshalBinary writes the header in network byte order. The checksum
// field is written as-is; callers that need a checksummed header should
// zero h.Checksum, marshal, call Checksum on the result, then patch bytes
// [12:14] before transmission (WithChecksum does this).
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderLen)
	buf[0] = h.Version
	buf[1] = h.Type
	binary.BigEndian.PutUint16(buf[2:4], h.Length)
	binary.BigEndian.PutUint32(buf[4:8], h.RouterID)
	binary.BigEndian.PutUint32(buf[8:12], h.AreaID)
	binary.BigEndian.PutUint16(buf[12:14], h.Checksum)
	// buf[14:16] pad, already zero
	return buf, nil
}

// UnmarshalBinary parses a 24-byte header.
func (h *Header) UnmarshalBinary(buf []byte) error {
	if len(buf) < HeaderLen {
		return fmt.Errorf("wire: header too short: %d bytes", len(buf))
	}
	h.Version = buf[0]
	h.Type = buf[1]
	h.Length = binary.BigEndian.Uint16(buf[2:4])
	h.RouterID = binary.BigEndian.Uint32(buf[4:8])
	h.AreaID = binary.BigEndian.Uint32(buf[8:12])
	h.Checksum = binary.BigEndian.Uint16(buf[12:14])
	return nil
}

// WithChecksum returns a copy of buf with bytes [12:14] (the checksum
// field of the common header) replaced by the ones'-complement checksum
// of buf computed with that field zeroed, per §6 "checksum (2) —
// ones-complement over header with checksum zeroed".
func WithChecksum(buf []byte) []byte {
	cp := make([]byte, len(buf))
	copy(cp, buf)
	cp[12], cp[13] = 0, 0
	cs := Checksum(cp)
	binary.BigEndian.PutUint16(cp[12:14], cs)
	return cp
}

// VerifyChecksum reports whether buf's stored checksum matches the
// checksum recomputed with the field zeroed.
func VerifyChecksum(buf []byte) bool {
	if len(buf) < HeaderLen {
		return false
	}
	want := binary.BigEndian.Uint16(buf[12:14])
	cp := make([]byte, len(buf))
	copy(cp, buf)
	cp[12], cp[13] = 0, 0
	return Checksum(cp) == want
}
