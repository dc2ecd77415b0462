package dns

// MaxUDPMessageSize is the receive buffer size for one datagram (RFC 1035 Section 4.2.1).
// Larger messages and truncation are not handled.
const MaxUDPMessageSize = 512

// ParseQuery decodes the header and the first question of a request.
//
// QDCOUNT is not consulted: the first question is always read and any
// further questions or records are ignored. Returns the decoded header even
// when the question fails to parse, so callers can still echo the ID.
func ParseQuery(msg []byte) (Header, Question, error) {
	off := 0
	h, err := ParseHeader(msg, &off)
	if err != nil {
		return Header{}, Question{}, err
	}
	q, err := ParseQuestion(msg, &off)
	if err != nil {
		return h, Question{}, err
	}
	return h, q, nil
}
