package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloRoundTrip(t *testing.T) {
	buf, err := BuildHello(0x0a000101, 0, 0xffffff00, 5)
	require.NoError(t, err)
	require.True(t, VerifyChecksum(buf))

	var hdr Header
	require.NoError(t, hdr.UnmarshalBinary(buf))
	assert.Equal(t, uint8(WireVersion), hdr.Version)
	assert.Equal(t, TypeHello, hdr.Type)
	assert.Equal(t, uint32(0x0a000101), hdr.RouterID)

	var hello Hello
	require.NoError(t, hello.UnmarshalBinary(buf[HeaderLen:]))
	assert.Equal(t, uint32(0xffffff00), hello.Mask)
	assert.Equal(t, uint16(5), hello.HelloInterval)

	// serialize -> parse -> serialize yields the original bytes.
	reHdrBytes, _ := hdr.MarshalBinary()
	reHelloBytes, _ := hello.MarshalBinary()
	re := WithChecksum(append(reHdrBytes, reHelloBytes...))
	assert.Equal(t, buf, re)
}

func TestLSURoundTrip(t *testing.T) {
	lsas := LSAs{
		{Subnet: 0x0a000100, Mask: 0xffffff00, AdvertisingRID: 0},
		{Subnet: 0x0a000200, Mask: 0xffffff00, AdvertisingRID: 0x0a000201},
	}
	buf, err := BuildLSU(0x0a000101, 0, 7, MaxLSUTTLForTest, lsas)
	require.NoError(t, err)
	require.True(t, VerifyChecksum(buf))

	var hdr Header
	require.NoError(t, hdr.UnmarshalBinary(buf))
	assert.Equal(t, TypeLSU, hdr.Type)

	var lsuHdr LSUHeader
	require.NoError(t, lsuHdr.UnmarshalBinary(buf[HeaderLen:]))
	assert.Equal(t, uint16(7), lsuHdr.Seqno)
	assert.Equal(t, uint32(2), lsuHdr.Nadv)

	got, err := UnmarshalLSAs(buf[HeaderLen+LSULen:], lsuHdr.Nadv)
	require.NoError(t, err)
	assert.Equal(t, lsas, got)

	reHdrBytes, _ := hdr.MarshalBinary()
	reLsuHdrBytes, _ := lsuHdr.MarshalBinary()
	reLsaBytes, _ := got.MarshalBinary()
	re := WithChecksum(append(append(reHdrBytes, reLsuHdrBytes...), reLsaBytes...))
	assert.Equal(t, buf, re)
}

func TestChecksumRejectsCorruption(t *testing.T) {
	buf, err := BuildHello(1, 0, 0xffffff00, 5)
	require.NoError(t, err)
	buf[0] ^= 0xff // corrupt the version byte
	assert.False(t, VerifyChecksum(buf))
}

// MaxLSUTTLForTest mirrors state.MaxLSUTTL so this test does not import
// state just to reuse the TTL default.
const MaxLSUTTLForTest = 16
