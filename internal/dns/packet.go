package dns

import "github.com/MrWebMD/hamurai-name-server/internal/helpers"

// Message represents a single-question DNS message (RFC 1035 Section 4.1).
//
// Only the sections this server produces are modelled:
//   - Header: Transaction ID, flags, section counts
//   - Question: At most one question; nil for header-only messages
//   - Answers: Resource records answering the question
//
// Marshal stamps QDCOUNT and ANCOUNT from the sections and zeroes the
// authority and additional counts, so the counts can never disagree with the
// body that follows.
type Message struct {
	Header   Header
	Question *Question
	Answers  []ResourceRecord
}

// Marshal serializes the message to DNS wire format (big-endian).
func (m Message) Marshal() ([]byte, error) {
	qd := 0
	if m.Question != nil {
		qd = 1
	}
	h := m.Header.WithCounts(uint16(qd), helpers.ClampIntToUint16(len(m.Answers)), 0, 0)

	hb, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	// Estimate capacity: header(12) + question(~50) + records(~100 each)
	out := make([]byte, 0, HeaderSize+qd*50+len(m.Answers)*100)
	out = append(out, hb...)

	if m.Question != nil {
		qb, err := m.Question.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, qb...)
	}

	for _, rr := range m.Answers {
		b, err := rr.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
