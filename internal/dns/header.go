package dns

import (
	"encoding/binary"
	"fmt"
	"log/slog"
)

// Header represents a DNS message header (RFC 1035 Section 4.1.1).
//
// The header is always 12 bytes and contains:
//   - ID: 16-bit identifier for matching requests to responses
//   - Flags: 16-bit field containing QR, Opcode, AA, TC, RD, RA, Z, RCODE
//   - QDCount: Number of questions
//   - ANCount: Number of answer resource records
//   - NSCount: Number of authority resource records
//   - ARCount: Number of additional resource records
//
// Header is a value type. The With* methods return an updated copy and touch
// only the bits of the field they set, so a header can be built up field by
// field without one setter disturbing another.
type Header struct {
	ID      uint16 // Transaction ID
	Flags   uint16 // See enums.go for flag definitions
	QDCount uint16 // Question count
	ANCount uint16 // Answer count
	NSCount uint16 // Authority (nameserver) count
	ARCount uint16 // Additional records count
}

// HeaderSize is the fixed size of a DNS header in bytes.
const HeaderSize = 12

// Marshal serializes the header to wire format (big-endian, 12 bytes).
func (h Header) Marshal() ([]byte, error) {
	b := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(b[0:2], h.ID)
	binary.BigEndian.PutUint16(b[2:4], h.Flags)
	binary.BigEndian.PutUint16(b[4:6], h.QDCount)
	binary.BigEndian.PutUint16(b[6:8], h.ANCount)
	binary.BigEndian.PutUint16(b[8:10], h.NSCount)
	binary.BigEndian.PutUint16(b[10:12], h.ARCount)
	return b, nil
}

// ParseHeader parses a DNS header from the message at the given offset.
// It advances *off by 12 bytes (the header size) on success.
func ParseHeader(msg []byte, off *int) (Header, error) {
	if *off+HeaderSize > len(msg) {
		return Header{}, fmt.Errorf("%w: need %d octets, have %d", ErrMalformedHeader, HeaderSize, len(msg)-*off)
	}
	h := Header{
		ID:      binary.BigEndian.Uint16(msg[*off : *off+2]),
		Flags:   binary.BigEndian.Uint16(msg[*off+2 : *off+4]),
		QDCount: binary.BigEndian.Uint16(msg[*off+4 : *off+6]),
		ANCount: binary.BigEndian.Uint16(msg[*off+6 : *off+8]),
		NSCount: binary.BigEndian.Uint16(msg[*off+8 : *off+10]),
		ARCount: binary.BigEndian.Uint16(msg[*off+10 : *off+12]),
	}
	*off += HeaderSize
	return h, nil
}

// DecodeHeader decodes a standalone header.
// An empty buffer yields the zero Header so an outbound header can be started
// from nothing; any other buffer shorter than HeaderSize is malformed.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) == 0 {
		return Header{}, nil
	}
	off := 0
	return ParseHeader(b, &off)
}

func (h Header) withFlag(flag uint16, enabled bool) Header {
	if enabled {
		h.Flags |= flag
	} else {
		h.Flags &^= flag
	}
	return h
}

// WithID returns h with the transaction ID replaced.
func (h Header) WithID(id uint16) Header {
	h.ID = id
	return h
}

// WithResponse sets QR to response (true) or query (false).
func (h Header) WithResponse(response bool) Header { return h.withFlag(QRFlag, response) }

// WithOpcode places op in bits 14-11.
func (h Header) WithOpcode(op Opcode) Header {
	h.Flags = (h.Flags &^ OpcodeMask) | (uint16(op)<<opcodeShift)&OpcodeMask
	return h
}

// WithAuthoritative sets or clears AA.
func (h Header) WithAuthoritative(aa bool) Header { return h.withFlag(AAFlag, aa) }

// WithTruncated sets or clears TC.
func (h Header) WithTruncated(tc bool) Header { return h.withFlag(TCFlag, tc) }

// WithRecursionDesired sets or clears RD.
func (h Header) WithRecursionDesired(rd bool) Header { return h.withFlag(RDFlag, rd) }

// WithRecursionAvailable sets or clears RA.
func (h Header) WithRecursionAvailable(ra bool) Header { return h.withFlag(RAFlag, ra) }

// WithZ places z in the three reserved bits. Responses built by this server keep it at zero.
func (h Header) WithZ(z uint8) Header {
	h.Flags = (h.Flags &^ ZMask) | (uint16(z)<<zShift)&ZMask
	return h
}

// WithRCode places rcode in the low 4 bits.
func (h Header) WithRCode(rcode RCode) Header {
	h.Flags = (h.Flags &^ RCodeMask) | uint16(rcode)&RCodeMask
	return h
}

// WithCounts replaces the four section counts.
func (h Header) WithCounts(qd, an, ns, ar uint16) Header {
	h.QDCount, h.ANCount, h.NSCount, h.ARCount = qd, an, ns, ar
	return h
}

// IsQuery returns true if this is a query (QR=0), false if it's a response (QR=1).
func (h Header) IsQuery() bool {
	return h.Flags&QRFlag == 0
}

// IsResponse returns true if this is a response (QR=1), false if it's a query (QR=0).
func (h Header) IsResponse() bool {
	return h.Flags&QRFlag != 0
}

// Opcode extracts the 4-bit operation code.
func (h Header) Opcode() Opcode {
	return Opcode((h.Flags & OpcodeMask) >> opcodeShift)
}

// Authoritative returns true if the AA (Authoritative Answer) flag is set.
func (h Header) Authoritative() bool {
	return h.Flags&AAFlag != 0
}

// Truncated returns true if the TC (Truncated) flag is set.
func (h Header) Truncated() bool {
	return h.Flags&TCFlag != 0
}

// RecursionDesired returns true if the RD (Recursion Desired) flag is set.
func (h Header) RecursionDesired() bool {
	return h.Flags&RDFlag != 0
}

// RecursionAvailable returns true if the RA (Recursion Available) flag is set.
func (h Header) RecursionAvailable() bool {
	return h.Flags&RAFlag != 0
}

// Z returns the three reserved bits.
func (h Header) Z() uint8 {
	return uint8((h.Flags & ZMask) >> zShift)
}

// RCode extracts the response code from the low 4 bits.
func (h Header) RCode() RCode {
	return RCode(h.Flags & RCodeMask)
}

// LogValue renders the decoded header as structured log attributes.
func (h Header) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("id", int(h.ID)),
		slog.Bool("qr", h.IsResponse()),
		slog.String("opcode", h.Opcode().String()),
		slog.Bool("aa", h.Authoritative()),
		slog.Bool("tc", h.Truncated()),
		slog.Bool("rd", h.RecursionDesired()),
		slog.Bool("ra", h.RecursionAvailable()),
		slog.Int("z", int(h.Z())),
		slog.String("rcode", h.RCode().String()),
		slog.Int("qdcount", int(h.QDCount)),
		slog.Int("ancount", int(h.ANCount)),
		slog.Int("nscount", int(h.NSCount)),
		slog.Int("arcount", int(h.ARCount)),
	)
}
