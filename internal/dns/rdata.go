package dns

import (
	"fmt"
	"net/netip"
)

// RData is the type-specific payload of a resource record.
//
// The set of implementations is closed: RawRData, IPv4RData, DomainRData and
// OPTRData. Each renders itself to wire format; the record builder derives
// RDLENGTH from the rendered bytes.
type RData interface {
	// MarshalRData marshals the payload to wire format.
	MarshalRData() ([]byte, error)

	isRData()
}

// RawRData is RDATA copied to the wire without transformation.
type RawRData []byte

// MarshalRData returns a copy of the raw octets.
func (r RawRData) MarshalRData() ([]byte, error) {
	return append([]byte(nil), r...), nil
}

func (RawRData) isRData() {}

// IPv4RData is the payload of an A record (RFC 1035 Section 3.4.1).
type IPv4RData struct {
	Addr netip.Addr
}

// NewIPv4RData parses a dotted-quad address such as "147.182.185.61".
func NewIPv4RData(s string) (IPv4RData, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IPv4RData{}, fmt.Errorf("%w: %w", ErrInvalidRData, err)
	}
	if !addr.Unmap().Is4() {
		return IPv4RData{}, fmt.Errorf("%w: %s is not an IPv4 address", ErrInvalidRData, s)
	}
	return IPv4RData{Addr: addr.Unmap()}, nil
}

// MarshalRData renders exactly four octets.
func (r IPv4RData) MarshalRData() ([]byte, error) {
	addr := r.Addr.Unmap()
	if !addr.Is4() {
		return nil, fmt.Errorf("%w: A record needs an IPv4 address, got %q", ErrInvalidRData, r.Addr)
	}
	b := addr.As4()
	return b[:], nil
}

func (IPv4RData) isRData() {}

// DomainRData is a payload holding a single uncompressed domain name
// (CNAME, NS, PTR and similar).
type DomainRData struct {
	Target string
}

// MarshalRData encodes the target name with EncodeName.
func (r DomainRData) MarshalRData() ([]byte, error) {
	return EncodeName(r.Target)
}

func (DomainRData) isRData() {}

// OPTRData stands in for the RDATA of an EDNS OPT pseudo-record (RFC 6891).
//
// It always renders to zero octets: the server acknowledges OPT queries but
// carries no EDNS options.
type OPTRData struct{}

// MarshalRData returns an empty payload.
func (OPTRData) MarshalRData() ([]byte, error) {
	return []byte{}, nil
}

func (OPTRData) isRData() {}
