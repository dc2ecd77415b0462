package dns

import (
	"fmt"
	"strconv"
)

// DNS header flags and masks (RFC 1035 Section 4.1.1)
//
// The second 16-bit word of the header has the following layout:
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA|   Z    |   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//
// Bit positions (from MSB):
//   - Bit 15 (0x8000): QR - Query (0) or Response (1)
//   - Bits 14-11 (0x7800): OPCODE - Operation type (0=Query, 1=IQuery, 2=Status)
//   - Bit 10 (0x0400): AA - Authoritative Answer
//   - Bit 9 (0x0200): TC - Truncation
//   - Bit 8 (0x0100): RD - Recursion Desired
//   - Bit 7 (0x0080): RA - Recursion Available
//   - Bits 6-4 (0x0070): Z - Reserved, always zero on output
//   - Bits 3-0 (0x000F): RCODE - Response code
const (
	QRFlag     uint16 = 0x8000
	OpcodeMask uint16 = 0x7800
	AAFlag     uint16 = 0x0400
	TCFlag     uint16 = 0x0200
	RDFlag     uint16 = 0x0100
	RAFlag     uint16 = 0x0080
	ZMask      uint16 = 0x0070
	RCodeMask  uint16 = 0x000F

	opcodeShift = 11
	zShift      = 4
)

// Opcode is the 4-bit operation classifier of a message.
type Opcode uint8

const (
	OpcodeQuery  Opcode = 0 // Standard query
	OpcodeIQuery Opcode = 1 // Inverse query
	OpcodeStatus Opcode = 2 // Server status request
)

func (o Opcode) String() string {
	switch o {
	case OpcodeQuery:
		return "QUERY"
	case OpcodeIQuery:
		return "IQUERY"
	case OpcodeStatus:
		return "STATUS"
	default:
		return "OPCODE" + strconv.Itoa(int(o))
	}
}

// RCode represents the response codes this server names.
// SERVFAIL is code 1 on the wire. Code 2 and 6-15 are representable but
// not named here.
type RCode uint8

const (
	RCodeNoError  RCode = 0 // No error
	RCodeServFail RCode = 1 // Server failure
	RCodeNXDomain RCode = 3 // Non-existent domain
	RCodeNotImp   RCode = 4 // Not implemented
	RCodeRefused  RCode = 5 // Refused by policy
)

func (r RCode) String() string {
	switch r {
	case RCodeNoError:
		return "NOERROR"
	case RCodeServFail:
		return "SERVFAIL"
	case RCodeNXDomain:
		return "NXDOMAIN"
	case RCodeNotImp:
		return "NOTIMP"
	case RCodeRefused:
		return "REFUSED"
	default:
		return "RCODE" + strconv.Itoa(int(r))
	}
}

// RecordType represents DNS resource record types (RFC 1035, RFC 3596, RFC 6891, RFC 9460).
type RecordType uint16

const (
	TypeA     RecordType = 1  // Host address
	TypeNS    RecordType = 2  // Authoritative name server
	TypeMD    RecordType = 3  // Mail destination (obsolete)
	TypeMF    RecordType = 4  // Mail forwarder (obsolete)
	TypeCNAME RecordType = 5  // Canonical name
	TypeSOA   RecordType = 6  // Start of authority
	TypeMB    RecordType = 7  // Mailbox domain name
	TypeMG    RecordType = 8  // Mail group member
	TypeMR    RecordType = 9  // Mail rename domain name
	TypeNULL  RecordType = 10 // Null RR
	TypeWKS   RecordType = 11 // Well known service
	TypePTR   RecordType = 12 // Domain name pointer
	TypeHINFO RecordType = 13 // Host information
	TypeMINFO RecordType = 14 // Mailbox information
	TypeMX    RecordType = 15 // Mail exchange
	TypeTXT   RecordType = 16 // Text strings
	TypeAAAA  RecordType = 28 // IPv6 address
	TypeOPT   RecordType = 41 // EDNS pseudo-record
	TypeHTTPS RecordType = 65 // HTTPS service binding
)

var typeNames = map[RecordType]string{
	TypeA:     "A",
	TypeNS:    "NS",
	TypeMD:    "MD",
	TypeMF:    "MF",
	TypeCNAME: "CNAME",
	TypeSOA:   "SOA",
	TypeMB:    "MB",
	TypeMG:    "MG",
	TypeMR:    "MR",
	TypeNULL:  "NULL",
	TypeWKS:   "WKS",
	TypePTR:   "PTR",
	TypeHINFO: "HINFO",
	TypeMINFO: "MINFO",
	TypeMX:    "MX",
	TypeTXT:   "TXT",
	TypeAAAA:  "AAAA",
	TypeOPT:   "OPT",
	TypeHTTPS: "HTTPS",
}

// ParseRecordType maps a wire TYPE code to a RecordType in the registry.
func ParseRecordType(v uint16) (RecordType, error) {
	t := RecordType(v)
	if _, ok := typeNames[t]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownType, v)
	}
	return t, nil
}

func (t RecordType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "TYPE" + strconv.Itoa(int(t))
}

// RecordClass represents DNS resource record classes (RFC 1035).
type RecordClass uint16

const (
	ClassIN RecordClass = 1 // Internet
	ClassCS RecordClass = 2 // CSNET (obsolete)
	ClassCH RecordClass = 3 // CHAOS
	ClassHS RecordClass = 4 // Hesiod
)

// ParseRecordClass maps a wire CLASS code to a RecordClass in the registry.
func ParseRecordClass(v uint16) (RecordClass, error) {
	c := RecordClass(v)
	switch c {
	case ClassIN, ClassCS, ClassCH, ClassHS:
		return c, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownClass, v)
	}
}

func (c RecordClass) String() string {
	switch c {
	case ClassIN:
		return "IN"
	case ClassCS:
		return "CS"
	case ClassCH:
		return "CH"
	case ClassHS:
		return "HS"
	default:
		return "CLASS" + strconv.Itoa(int(c))
	}
}
