package dns

import (
	"encoding/binary"
	"fmt"
	"log/slog"
)

// Question represents a DNS question section entry (RFC 1035 Section 4.1.2).
//
// Each question specifies what the client is asking for:
//   - Name: The domain name being queried
//   - Type: The record type requested (A, AAAA, MX, etc.)
//   - Class: Usually ClassIN (Internet)
type Question struct {
	Name  string
	Type  RecordType
	Class RecordClass
}

// Marshal serializes the question to DNS wire format.
func (q Question) Marshal() ([]byte, error) {
	name, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	b := make([]byte, len(name), len(name)+4)
	copy(b, name)
	b = binary.BigEndian.AppendUint16(b, uint16(q.Type))
	b = binary.BigEndian.AppendUint16(b, uint16(q.Class))
	return b, nil
}

// ParseQuestion parses a question from the message at the given offset.
// It advances *off past the parsed question on success.
//
// Type and class must both be in the registries of enums.go.
func ParseQuestion(msg []byte, off *int) (Question, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return Question{}, err
	}
	if *off+4 > len(msg) {
		return Question{}, fmt.Errorf("%w: reading question type and class", ErrShortBuffer)
	}
	qtype, err := ParseRecordType(binary.BigEndian.Uint16(msg[*off : *off+2]))
	if err != nil {
		return Question{}, err
	}
	qclass, err := ParseRecordClass(binary.BigEndian.Uint16(msg[*off+2 : *off+4]))
	if err != nil {
		return Question{}, err
	}
	*off += 4
	return Question{Name: name, Type: qtype, Class: qclass}, nil
}

// LogValue renders the question as structured log attributes.
func (q Question) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("qname", q.Name),
		slog.String("qtype", q.Type.String()),
		slog.String("qclass", q.Class.String()),
	)
}
