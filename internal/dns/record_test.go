package dns

import (
	"encoding/binary"
	"net/netip"
	"testing"

	mdns "github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMarshalA(t *testing.T) {
	q := Question{Name: "example.com", Type: TypeA, Class: ClassIN}
	rr, err := NewAnswer(q, 300, IPv4RData{Addr: netip.MustParseAddr("192.0.2.1")})
	require.NoError(t, err)

	b, err := rr.Marshal()
	require.NoError(t, err)

	exp := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0, 1, // Type A
		0, 1, // Class IN
		0, 0, 0x01, 0x2C, // TTL 300
		0, 4, // RDLENGTH
		192, 0, 2, 1,
	}
	assert.Equal(t, exp, b)
}

func TestRecordMarshalOPT(t *testing.T) {
	q := Question{Name: "ricklantis.com", Type: TypeOPT, Class: ClassIN}
	rr, err := NewAnswer(q, 10, OPTRData{})
	require.NoError(t, err)

	b, err := rr.Marshal()
	require.NoError(t, err)

	// name(16) + fixed(10), no rdata
	require.Len(t, b, 16+rrFixedSize)
	assert.Equal(t, uint16(TypeOPT), binary.BigEndian.Uint16(b[16:18]))
	assert.Equal(t, uint16(0), binary.BigEndian.Uint16(b[24:26]))
}

func TestRecordMarshalRootName(t *testing.T) {
	rr := ResourceRecord{Type: TypeTXT, Class: ClassIN, TTL: 1, Data: RawRData{3, 'a', 'b', 'c'}}
	b, err := rr.Marshal()
	require.NoError(t, err)
	assert.Equal(t, byte(0), b[0])
	assert.Len(t, b, 1+rrFixedSize+4)
}

func TestRecordRDLengthMatchesRData(t *testing.T) {
	tests := []struct {
		name string
		data RData
		want []byte
	}{
		{"raw", RawRData{1, 2, 3, 4, 5}, []byte{1, 2, 3, 4, 5}},
		{"empty raw", RawRData{}, []byte{}},
		{"ipv4", IPv4RData{Addr: netip.MustParseAddr("147.182.185.61")}, []byte{147, 182, 185, 61}},
		{"ipv4 mapped", IPv4RData{Addr: netip.MustParseAddr("::ffff:10.0.0.1")}, []byte{10, 0, 0, 1}},
		{"domain", DomainRData{Target: "ns1.example.com"}, []byte{3, 'n', 's', '1', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}},
		{"opt", OPTRData{}, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{Name: "x.test", Type: TypeNULL, Class: ClassIN}
			rr, err := NewAnswer(q, 3600, tt.data)
			require.NoError(t, err)

			b, err := rr.Marshal()
			require.NoError(t, err)

			off := 0
			_, err = DecodeName(b, &off)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(b), off+rrFixedSize)

			rdlen := int(binary.BigEndian.Uint16(b[off+8 : off+10]))
			rdata := b[off+rrFixedSize:]
			assert.Equal(t, len(rdata), rdlen)
			assert.Equal(t, tt.want, rdata)
		})
	}
}

func TestRecordMarshalErrors(t *testing.T) {
	_, err := ResourceRecord{Type: TypeA, Class: ClassIN}.Marshal()
	assert.ErrorIs(t, err, ErrInvalidRData)

	_, err = ResourceRecord{Type: TypeA, Class: ClassIN, Data: IPv4RData{Addr: netip.MustParseAddr("2001:db8::1")}}.Marshal()
	assert.ErrorIs(t, err, ErrInvalidRData)

	_, err = ResourceRecord{Type: TypeA, Class: ClassIN, Data: IPv4RData{}}.Marshal()
	assert.ErrorIs(t, err, ErrInvalidRData)
}

func TestNewIPv4RData(t *testing.T) {
	rd, err := NewIPv4RData("147.182.185.61")
	require.NoError(t, err)
	b, err := rd.MarshalRData()
	require.NoError(t, err)
	assert.Equal(t, []byte{147, 182, 185, 61}, b)

	_, err = NewIPv4RData("2001:db8::1")
	assert.ErrorIs(t, err, ErrInvalidRData)

	_, err = NewIPv4RData("not-an-ip")
	assert.ErrorIs(t, err, ErrInvalidRData)
}

func TestRawRDataIsCopied(t *testing.T) {
	raw := RawRData{1, 2}
	b, err := raw.MarshalRData()
	require.NoError(t, err)
	b[0] = 9
	assert.Equal(t, byte(1), raw[0])
}

func TestMessageMarshalDecodesWithMiekg(t *testing.T) {
	q := Question{Name: "ricklantis.com", Type: TypeA, Class: ClassIN}
	rr, err := NewAnswer(q, 10, IPv4RData{Addr: netip.MustParseAddr("147.182.185.61")})
	require.NoError(t, err)

	m := Message{
		Header:   Header{}.WithID(0x0102).WithResponse(true).WithAuthoritative(true),
		Question: &q,
		Answers:  []ResourceRecord{rr},
	}
	b, err := m.Marshal()
	require.NoError(t, err)

	var got mdns.Msg
	require.NoError(t, got.Unpack(b))

	assert.Equal(t, uint16(0x0102), got.Id)
	assert.True(t, got.Response)
	assert.True(t, got.Authoritative)
	assert.Equal(t, mdns.RcodeSuccess, got.Rcode)
	require.Len(t, got.Question, 1)
	assert.Equal(t, "ricklantis.com.", got.Question[0].Name)
	assert.Equal(t, mdns.TypeA, got.Question[0].Qtype)
	require.Len(t, got.Answer, 1)

	a, ok := got.Answer[0].(*mdns.A)
	require.True(t, ok, "expected *dns.A, got %T", got.Answer[0])
	assert.Equal(t, "147.182.185.61", a.A.String())
	assert.Equal(t, uint32(10), a.Hdr.Ttl)
	assert.Equal(t, uint16(4), a.Hdr.Rdlength)
}

func TestMessageMarshalStampsCounts(t *testing.T) {
	m := Message{Header: Header{QDCount: 7, ANCount: 7, NSCount: 7, ARCount: 7}}
	b, err := m.Marshal()
	require.NoError(t, err)
	require.Len(t, b, HeaderSize)

	h, err := DecodeHeader(b)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), h.QDCount)
	assert.Equal(t, uint16(0), h.ANCount)
	assert.Equal(t, uint16(0), h.NSCount)
	assert.Equal(t, uint16(0), h.ARCount)
}
