// Package dns provides the wire codec for the single-question DNS messages
// answered by the name server.
//
// Standards Compliance:
//
// This package implements the subset of RFC 1035 needed for one question and
// one answer per message:
//
//   - RFC 1035 Section 4.1.1: header layout and flag bits
//   - RFC 1035 Section 3.1 / 4.1.2: label encoding of names and the question entry
//   - RFC 1035 Section 4.1.3: resource record layout
//   - RFC 6891: OPT pseudo-record (stub only, no options are produced)
//
// Message compression (RFC 1035 Section 4.1.4) is not supported. A label length
// octet carrying a compression pointer is rejected, never followed.
//
// Type-Oriented Design:
//
// RDATA is a closed set of explicit types (RawRData, IPv4RData, DomainRData,
// OPTRData). Adding a record payload means adding a type to that set.
//
// Error Handling:
//
// All errors wrap one of the sentinels below with fmt.Errorf("%w: ...").
// Every sentinel itself wraps ErrDNSError, so callers can match either the
// specific failure or any wire error.
package dns

import (
	"errors"
	"fmt"
)

var (
	// ErrDNSError is the root of every DNS wire error.
	ErrDNSError = errors.New("dns wire error")

	// ErrMalformedHeader is returned when fewer than 12 octets are available for the header.
	ErrMalformedHeader = fmt.Errorf("%w: malformed header", ErrDNSError)

	// ErrMalformedLabel is returned when a name runs past the buffer, uses a
	// compression pointer, has a label containing '.', or exceeds
	// MaxNameLabels without a terminator.
	ErrMalformedLabel = fmt.Errorf("%w: malformed label", ErrDNSError)

	// ErrLabelTooLong is returned when encoding a label longer than MaxLabelLength.
	ErrLabelTooLong = fmt.Errorf("%w: label too long", ErrDNSError)

	// ErrNameTooLong is returned when an encoded name exceeds MaxNameLength.
	ErrNameTooLong = fmt.Errorf("%w: name too long", ErrDNSError)

	// ErrUnknownType is returned for a TYPE code outside the supported registry.
	ErrUnknownType = fmt.Errorf("%w: unknown type", ErrDNSError)

	// ErrUnknownClass is returned for a CLASS code outside the supported registry.
	ErrUnknownClass = fmt.Errorf("%w: unknown class", ErrDNSError)

	// ErrShortBuffer is returned when a fixed-size field runs past the end of the message.
	ErrShortBuffer = fmt.Errorf("%w: unexpected end of message", ErrDNSError)

	// ErrInvalidRData is returned when RDATA cannot be rendered to wire format.
	ErrInvalidRData = fmt.Errorf("%w: invalid rdata", ErrDNSError)
)
