package wire

import (
	"encoding/binary"
	"fmt"
)

// LSULen is the size in bytes of the LSU payload header, preceding the LSA
// array (§6).
const LSULen = 8

// LSALen is the size in bytes of a single LSA record.
const LSALen = 12

// LSUHeader is the 8-byte LSU payload header: sequence, TTL, a reserved
// byte, and the LSA count.
type LSUHeader struct {
	Seqno uint16
	TTL   uint8
	Nadv  uint32
}

// LSA is one (subnet, mask, advertising_rid) triple, 12 bytes on the wire.
type LSA struct {
	Subnet         uint32
	Mask           uint32
	AdvertisingRID uint32
}

func (h LSUHeader) MarshalBinary() ([]byte, error) {
	buf := make([]byte, LSULen)
	binary.BigEndian.PutUint16(buf[0:2], h.Seqno)
	buf[2] = h.TTL
	// buf[3] unused, already zero
	binary.BigEndian.PutUint32(buf[4:8], h.Nadv)
	return buf, nil
}

func (h *LSUHeader) UnmarshalBinary(buf []byte) error {
	if len(buf) < LSULen {
		return fmt.Errorf("wire: lsu header too short: %d bytes", len(buf))
	}
	h.Seqno = binary.BigEndian.Uint16(buf[0:2])
	h.TTL = buf[2]
	h.Nadv = binary.BigEndian.Uint32(buf[4:8])
	return nil
}

func (a LSA) MarshalBinary() ([]byte, error) {
	buf := make([]byte, LSALen)
	binary.BigEndian.PutUint32(buf[0:4], a.Subnet)
	binary.BigEndian.PutUint32(buf[4:8], a.Mask)
	binary.BigEndian.PutUint32(buf[8:12], a.AdvertisingRID)
	return buf, nil
}

func (a *LSA) UnmarshalBinary(buf []byte) error {
	if len(buf) < LSALen {
		return fmt.Errorf("wire: lsa too short: %d bytes", len(buf))
	}
	a.Subnet = binary.BigEndian.Uint32(buf[0:4])
	a.Mask = binary.BigEndian.Uint32(buf[4:8])
	a.AdvertisingRID = binary.BigEndian.Uint32(buf[8:12])
	return nil
}

// LSAs is the decoded array trailing an LSUHeader.
type LSAs []LSA

func (ls LSAs) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, len(ls)*LSALen)
	for _, a := range ls {
		b, _ := a.MarshalBinary()
		buf = append(buf, b...)
	}
	return buf, nil
}

// UnmarshalLSAs decodes n LSA records from buf.
func UnmarshalLSAs(buf []byte, n uint32) (LSAs, error) {
	if uint32(len(buf)) < n*LSALen {
		return nil, fmt.Errorf("wire: lsa array too short: need %d bytes, have %d", n*LSALen, len(buf))
	}
	out := make(LSAs, n)
	for i := uint32(0); i < n; i++ {
		if err := out[i].UnmarshalBinary(buf[i*LSALen:]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// BuildLSU assembles a complete, checksummed LSU packet.
func BuildLSU(routerID, areaID uint32, seqno uint16, ttl uint8, lsas LSAs) ([]byte, error) {
	hdr := LSUHeader{Seqno: seqno, TTL: ttl, Nadv: uint32(len(lsas))}
	hdrBytes, err := hdr.MarshalBinary()
	if err != nil {
		return nil, err
	}
	lsaBytes, err := lsas.MarshalBinary()
	if err != nil {
		return nil, err
	}
	payload := append(hdrBytes, lsaBytes...)

	common := Header{
		Version:  WireVersion,
		Type:     TypeLSU,
		Length:   uint16(HeaderLen + len(payload)),
		RouterID: routerID,
		AreaID:   areaID,
	}
	commonBytes, _ := common.MarshalBinary()
	buf := append(commonBytes, payload...)
	return WithChecksum(buf), nil
}
