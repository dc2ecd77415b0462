package dns

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ResourceRecord is one answer record (RFC 1035 Section 4.1.3).
//
// Name holds the owner name already in wire format, usually taken from the
// question being answered.
type ResourceRecord struct {
	Name  []byte
	Type  RecordType
	Class RecordClass
	TTL   uint32
	Data  RData
}

// rrFixedSize is TYPE(2) + CLASS(2) + TTL(4) + RDLENGTH(2).
const rrFixedSize = 10

// NewAnswer builds a record owned by q: q's encoded name, type and class.
func NewAnswer(q Question, ttl uint32, data RData) (ResourceRecord, error) {
	name, err := EncodeName(q.Name)
	if err != nil {
		return ResourceRecord{}, err
	}
	return ResourceRecord{Name: name, Type: q.Type, Class: q.Class, TTL: ttl, Data: data}, nil
}

// Marshal converts the record to wire-format bytes.
//
// Layout: NAME | TYPE | CLASS | TTL | RDLENGTH | RDATA. RDLENGTH is always
// the length of the RDATA rendered here.
func (rr ResourceRecord) Marshal() ([]byte, error) {
	if rr.Data == nil {
		return nil, fmt.Errorf("%w: record has no rdata", ErrInvalidRData)
	}
	rdata, err := rr.Data.MarshalRData()
	if err != nil {
		return nil, err
	}
	if len(rdata) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInvalidRData, len(rdata), math.MaxUint16)
	}

	name := rr.Name
	if len(name) == 0 {
		name = []byte{0}
	}

	out := make([]byte, 0, len(name)+rrFixedSize+len(rdata))
	out = append(out, name...)
	out = binary.BigEndian.AppendUint16(out, uint16(rr.Type))
	out = binary.BigEndian.AppendUint16(out, uint16(rr.Class))
	out = binary.BigEndian.AppendUint32(out, rr.TTL)
	out = binary.BigEndian.AppendUint16(out, uint16(len(rdata)))
	out = append(out, rdata...)
	return out, nil
}
