package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderMarshal(t *testing.T) {
	h := Header{
		ID:      0x1234,
		Flags:   0x8180, // Standard response, no error
		QDCount: 1,
		ANCount: 2,
		NSCount: 3,
		ARCount: 4,
	}

	b, err := h.Marshal()
	require.NoError(t, err)

	exp := []byte{
		0x12, 0x34, // ID
		0x81, 0x80, // Flags
		0x00, 0x01, // QDCount
		0x00, 0x02, // ANCount
		0x00, 0x03, // NSCount
		0x00, 0x04, // ARCount
	}
	assert.Equal(t, exp, b)
}

func TestParseHeader(t *testing.T) {
	msg := []byte{
		0x12, 0x34, // ID
		0x81, 0x80, // Flags (response, RD, RA)
		0x00, 0x01, // QDCount
		0x00, 0x02, // ANCount
		0x00, 0x03, // NSCount
		0x00, 0x04, // ARCount
	}

	off := 0
	h, err := ParseHeader(msg, &off)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x1234), h.ID)
	assert.True(t, h.IsResponse())
	assert.True(t, h.RecursionDesired())
	assert.True(t, h.RecursionAvailable())
	assert.Equal(t, uint16(1), h.QDCount)
	assert.Equal(t, uint16(2), h.ANCount)
	assert.Equal(t, uint16(3), h.NSCount)
	assert.Equal(t, uint16(4), h.ARCount)
	assert.Equal(t, HeaderSize, off)
}

func TestParseHeaderTooShort(t *testing.T) {
	msg := []byte{0x12, 0x34, 0x81, 0x80} // Only 4 bytes

	off := 0
	_, err := ParseHeader(msg, &off)
	require.ErrorIs(t, err, ErrMalformedHeader)
	assert.ErrorIs(t, err, ErrDNSError)
	assert.Equal(t, 0, off, "offset must not move on failure")
}

func TestParseHeaderOffset(t *testing.T) {
	// Header at offset 5
	msg := make([]byte, 5+HeaderSize)
	msg[5] = 0xAB
	msg[6] = 0xCD

	off := 5
	h, err := ParseHeader(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xABCD), h.ID)
	assert.Equal(t, 5+HeaderSize, off)
}

func TestDecodeHeader(t *testing.T) {
	t.Run("empty yields zero header", func(t *testing.T) {
		h, err := DecodeHeader(nil)
		require.NoError(t, err)
		assert.Equal(t, Header{}, h)
	})

	t.Run("short input is malformed", func(t *testing.T) {
		for n := 1; n < HeaderSize; n++ {
			_, err := DecodeHeader(make([]byte, n))
			assert.ErrorIs(t, err, ErrMalformedHeader, "length %d", n)
		}
	})

	t.Run("full header", func(t *testing.T) {
		h, err := DecodeHeader([]byte{0, 7, 0x01, 0x00, 0, 1, 0, 0, 0, 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, uint16(7), h.ID)
		assert.True(t, h.IsQuery())
		assert.True(t, h.RecursionDesired())
	})
}

func TestHeaderSettersTouchOnlyTheirBits(t *testing.T) {
	tests := []struct {
		name  string
		set   func(Header) Header
		byte2 byte
		byte3 byte
	}{
		{"qr", func(h Header) Header { return h.WithResponse(true) }, 0x80, 0x00},
		{"opcode iquery", func(h Header) Header { return h.WithOpcode(OpcodeIQuery) }, 0x08, 0x00},
		{"opcode status", func(h Header) Header { return h.WithOpcode(OpcodeStatus) }, 0x10, 0x00},
		{"aa", func(h Header) Header { return h.WithAuthoritative(true) }, 0x04, 0x00},
		{"tc", func(h Header) Header { return h.WithTruncated(true) }, 0x02, 0x00},
		{"rd", func(h Header) Header { return h.WithRecursionDesired(true) }, 0x01, 0x00},
		{"ra", func(h Header) Header { return h.WithRecursionAvailable(true) }, 0x00, 0x80},
		{"z", func(h Header) Header { return h.WithZ(0x7) }, 0x00, 0x70},
		{"rcode nxdomain", func(h Header) Header { return h.WithRCode(RCodeNXDomain) }, 0x00, 0x03},
		{"rcode servfail", func(h Header) Header { return h.WithRCode(RCodeServFail) }, 0x00, 0x01},
		{"rcode unnamed 2", func(h Header) Header { return h.WithRCode(RCode(2)) }, 0x00, 0x02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.set(Header{}).Marshal()
			require.NoError(t, err)
			assert.Equal(t, tt.byte2, b[2])
			assert.Equal(t, tt.byte3, b[3])
		})
	}
}

func TestHeaderSettersPreserveOtherFields(t *testing.T) {
	h := Header{}.
		WithID(0xBEEF).
		WithResponse(true).
		WithOpcode(OpcodeStatus).
		WithAuthoritative(true).
		WithRecursionDesired(true).
		WithRCode(RCodeNotImp).
		WithCounts(1, 2, 3, 4)

	// Overwriting a multi-bit field must not leak into neighbours.
	h = h.WithOpcode(OpcodeQuery).WithRCode(RCodeRefused)

	assert.Equal(t, uint16(0xBEEF), h.ID)
	assert.True(t, h.IsResponse())
	assert.Equal(t, OpcodeQuery, h.Opcode())
	assert.True(t, h.Authoritative())
	assert.False(t, h.Truncated())
	assert.True(t, h.RecursionDesired())
	assert.False(t, h.RecursionAvailable())
	assert.Equal(t, uint8(0), h.Z())
	assert.Equal(t, RCodeRefused, h.RCode())

	// Clearing flags
	h = h.WithAuthoritative(false).WithResponse(false)
	assert.False(t, h.Authoritative())
	assert.True(t, h.IsQuery())
	assert.True(t, h.RecursionDesired())
}

func TestHeaderSettersDoNotAlias(t *testing.T) {
	base := Header{ID: 1}
	updated := base.WithResponse(true).WithRCode(RCodeServFail)

	assert.Equal(t, Header{ID: 1}, base)
	assert.NotEqual(t, base, updated)
}

func TestHeaderRoundTrip(t *testing.T) {
	headers := []Header{
		{},
		{ID: 0xABCD, Flags: RDFlag, QDCount: 1},
		Header{}.WithID(0xFFFF).WithResponse(true).WithAuthoritative(true).WithRCode(RCodeNXDomain).WithCounts(1, 0, 0, 0),
		Header{}.WithOpcode(OpcodeStatus).WithTruncated(true).WithRecursionAvailable(true).WithCounts(0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF),
		{ID: 0x0001, Flags: 0xFFFF},
	}

	for _, original := range headers {
		b, err := original.Marshal()
		require.NoError(t, err)
		require.Len(t, b, HeaderSize)

		parsed, err := DecodeHeader(b)
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "QUERY", OpcodeQuery.String())
	assert.Equal(t, "OPCODE9", Opcode(9).String())
	assert.Equal(t, "SERVFAIL", RCodeServFail.String())
	assert.Equal(t, RCode(1), RCodeServFail)
	assert.Equal(t, "RCODE2", RCode(2).String())
	assert.Equal(t, "RCODE11", RCode(11).String())
	assert.Equal(t, "HTTPS", TypeHTTPS.String())
	assert.Equal(t, "TYPE99", RecordType(99).String())
	assert.Equal(t, "CH", ClassCH.String())
}

func TestParseRecordTypeAndClass(t *testing.T) {
	for _, code := range []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 28, 41, 65} {
		rt, err := ParseRecordType(code)
		require.NoError(t, err, "type %d", code)
		assert.Equal(t, RecordType(code), rt)
	}
	for _, code := range []uint16{0, 17, 33, 255} {
		_, err := ParseRecordType(code)
		assert.ErrorIs(t, err, ErrUnknownType, "type %d", code)
	}

	for _, code := range []uint16{1, 2, 3, 4} {
		rc, err := ParseRecordClass(code)
		require.NoError(t, err)
		assert.Equal(t, RecordClass(code), rc)
	}
	_, err := ParseRecordClass(255)
	assert.ErrorIs(t, err, ErrUnknownClass)
}
