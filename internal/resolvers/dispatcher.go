package resolvers

import (
	"github.com/MrWebMD/hamurai-name-server/internal/dns"
	"github.com/MrWebMD/hamurai-name-server/internal/zone"
)

// FallbackID is the transaction ID of every SERVFAIL reply. The request ID
// is never echoed on that path since the request may not have decoded at all.
const FallbackID uint16 = 1

// serverFailure is sent if even the SERVFAIL reply fails to encode.
// ID 1, QR=1, AA=1, RCODE=SERVFAIL (1), all counts zero.
var serverFailure = []byte{0x00, 0x01, 0x84, 0x01, 0, 0, 0, 0, 0, 0, 0, 0}

// Dispatcher answers requests for a single zone.
// It holds no per-request state and is safe for concurrent use.
type Dispatcher struct {
	zone *zone.Zone
}

// NewDispatcher creates a Dispatcher authoritative for z.
func NewDispatcher(z *zone.Zone) *Dispatcher {
	if z == nil {
		panic("resolvers.NewDispatcher: zone is nil")
	}
	return &Dispatcher{zone: z}
}

// Zone returns the zone the dispatcher answers for.
func (d *Dispatcher) Zone() *zone.Zone { return d.zone }

// Dispatch decodes payload and returns the encoded reply.
//
// Outcomes:
//   - undecodable request: SERVFAIL, header only, AA=1, ID FallbackID
//   - name outside the zone: NXDOMAIN, question echoed
//   - type A: NOERROR, AA=1, one A record with the zone address and TTL
//   - type OPT: NOERROR, AA=1, one OPT record with empty RDATA
//   - any other recognised type: NOTIMP, question echoed
//
// Every reply has QR=1 and opcode QUERY; TC, RD, RA and Z are always zero.
func (d *Dispatcher) Dispatch(payload []byte) Result {
	req, q, err := dns.ParseQuery(payload)
	if err != nil {
		return serverError(req, err)
	}

	if !d.zone.Matches(q.Name) {
		return d.respond(req, q, OutcomeNameError, dns.RCodeNXDomain, false, nil)
	}

	switch q.Type {
	case dns.TypeA:
		return d.answer(req, q, OutcomeAnswerA, d.zone.Address)
	case dns.TypeOPT:
		return d.answer(req, q, OutcomeAnswerOPT, dns.OPTRData{})
	default:
		return d.respond(req, q, OutcomeNotImplemented, dns.RCodeNotImp, false, nil)
	}
}

// answer builds a NOERROR reply carrying one record owned by q.
func (d *Dispatcher) answer(req dns.Header, q dns.Question, outcome Outcome, data dns.RData) Result {
	rr, err := dns.NewAnswer(q, d.zone.TTL, data)
	if err != nil {
		return serverError(req, err)
	}
	return d.respond(req, q, outcome, dns.RCodeNoError, true, []dns.ResourceRecord{rr})
}

// respond encodes a reply that echoes the question.
func (d *Dispatcher) respond(
	req dns.Header,
	q dns.Question,
	outcome Outcome,
	rcode dns.RCode,
	authoritative bool,
	answers []dns.ResourceRecord,
) Result {
	m := dns.Message{
		Header:   responseHeader(req.ID, rcode, authoritative),
		Question: &q,
		Answers:  answers,
	}
	b, err := m.Marshal()
	if err != nil {
		// The question decoded but cannot be re-encoded (e.g. name over 255 octets).
		return serverError(req, err)
	}
	return Result{ResponseBytes: b, Outcome: outcome, Request: req, Question: &q}
}

// ServerFailure builds the SERVFAIL reply for payload without dispatching it.
// The request header is decoded only so the Result can be logged.
func ServerFailure(payload []byte, cause error) Result {
	off := 0
	req, _ := dns.ParseHeader(payload, &off)
	return serverError(req, cause)
}

// serverError encodes the header-only SERVFAIL reply with ID FallbackID.
func serverError(req dns.Header, cause error) Result {
	m := dns.Message{Header: responseHeader(FallbackID, dns.RCodeServFail, true)}
	b, err := m.Marshal()
	if err != nil {
		b = append([]byte(nil), serverFailure...)
	}
	return Result{ResponseBytes: b, Outcome: OutcomeServerError, Request: req, Err: cause}
}

// responseHeader builds the flags shared by every reply:
// QR=1, opcode QUERY, TC=RD=RA=0, Z=0.
func responseHeader(id uint16, rcode dns.RCode, authoritative bool) dns.Header {
	return dns.Header{}.
		WithID(id).
		WithResponse(true).
		WithOpcode(dns.OpcodeQuery).
		WithAuthoritative(authoritative).
		WithTruncated(false).
		WithRecursionDesired(false).
		WithRecursionAvailable(false).
		WithZ(0).
		WithRCode(rcode)
}
