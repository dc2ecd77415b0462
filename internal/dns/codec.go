package dns

import (
	"bytes"
	"fmt"
	"strings"
)

// Name limits.
const (
	MaxLabelLength = 63  // RFC 1035 Section 2.3.4
	MaxNameLength  = 255 // Encoded octets including the terminator
	// MaxNameLabels caps decoding at 10 subdomains plus the top-level label.
	// This is stricter than RFC 1035 and bounds the work done per datagram.
	MaxNameLabels = 11
)

// EncodeName encodes a domain name to DNS wire format (RFC 1035 Section 3.1).
//
// DNS names are encoded as a sequence of labels, where each label is:
//   - 1 byte: length (0-63)
//   - N bytes: label octets, copied verbatim
//
// The name is terminated by a zero-length label (single 0x00 byte).
//
// Example: "www.example.com" encodes as:
//
//	[3]www[7]example[3]com[0]
//
// The name is split on '.' only; empty segments (leading, trailing or doubled
// dots) are skipped, so "" and "." both encode to the root name [0].
// Labels are never compressed.
func EncodeName(domain string) ([]byte, error) {
	out := make([]byte, 0, len(domain)+2)
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			continue
		}
		if len(label) > MaxLabelLength {
			return nil, fmt.Errorf("%w: %d > %d octets: %q", ErrLabelTooLong, len(label), MaxLabelLength, label)
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	out = append(out, 0)

	if len(out) > MaxNameLength {
		return nil, fmt.Errorf("%w: %d > %d octets", ErrNameTooLong, len(out), MaxNameLength)
	}
	return out, nil
}

// DecodeName decodes an uncompressed domain name starting at *off.
//
// On success *off points at the octet after the terminating zero label and
// the labels are returned joined by dots, without a trailing dot. The root
// name decodes to "".
//
// A length octet with either of its two high bits set is a compression
// pointer (11xxxxxx) or a reserved label type (01xxxxxx, 10xxxxxx); both are
// rejected with ErrMalformedLabel rather than being read as a length.
//
// A label containing '.' is rejected with ErrMalformedLabel as well: the
// dotted form could not tell it apart from two labels, so the question
// echoed in a reply would no longer match the request.
func DecodeName(msg []byte, off *int) (string, error) {
	pos := *off
	// Pre-allocate for typical domain depth (e.g., www.example.com = 3 labels)
	labels := make([]string, 0, 4)
	for {
		if pos < 0 || pos >= len(msg) {
			return "", fmt.Errorf("%w: unexpected end of message while decoding name", ErrMalformedLabel)
		}
		labelLen := int(msg[pos])
		pos++

		// Zero-length label marks end of name
		if labelLen == 0 {
			break
		}
		if labelLen&0xC0 != 0 {
			return "", fmt.Errorf("%w: label length octet 0x%02x (compression is not supported)", ErrMalformedLabel, labelLen)
		}
		if len(labels) == MaxNameLabels {
			return "", fmt.Errorf("%w: more than %d labels", ErrMalformedLabel, MaxNameLabels)
		}
		if pos+labelLen > len(msg) {
			return "", fmt.Errorf("%w: label of %d octets runs past end of message", ErrMalformedLabel, labelLen)
		}
		label := msg[pos : pos+labelLen]
		if bytes.IndexByte(label, '.') >= 0 {
			return "", fmt.Errorf("%w: label %q contains a dot", ErrMalformedLabel, label)
		}
		labels = append(labels, string(label))
		pos += labelLen
	}

	*off = pos
	return strings.Join(labels, "."), nil
}
