// Package resolvers decides how the server answers a request.
//
// Architecture:
//
// The Dispatcher is the only resolution strategy. It is authoritative for a
// single configured zone and never recurses, forwards or caches. Each
// datagram is handled on its own:
//
//  1. Decode the header and the first question
//  2. Check the question name against the zone
//  3. Pick a response variant from the query type
//  4. Encode the reply
//
// Every datagram yields exactly one reply. Decode failures are not returned
// to the caller; they become a SERVFAIL reply.
package resolvers

import "github.com/MrWebMD/hamurai-name-server/internal/dns"

// Outcome identifies which response variant was produced.
type Outcome int

const (
	// OutcomeServerError is a SERVFAIL reply to a request that could not be decoded or encoded.
	OutcomeServerError Outcome = iota
	// OutcomeNameError is an NXDOMAIN reply for a name outside the zone.
	OutcomeNameError
	// OutcomeNotImplemented is a NOTIMP reply for a recognised type without an answer path.
	OutcomeNotImplemented
	// OutcomeAnswerA carries the zone address as one A record.
	OutcomeAnswerA
	// OutcomeAnswerOPT carries one OPT record with empty RDATA.
	OutcomeAnswerOPT
)

func (o Outcome) String() string {
	switch o {
	case OutcomeServerError:
		return "servfail"
	case OutcomeNameError:
		return "nxdomain"
	case OutcomeNotImplemented:
		return "notimp"
	case OutcomeAnswerA:
		return "answer-a"
	case OutcomeAnswerOPT:
		return "answer-opt"
	default:
		return "unknown"
	}
}

// Result holds the outcome of dispatching one datagram.
type Result struct {
	ResponseBytes []byte        // Wire-format DNS response, never empty
	Outcome       Outcome       // Response variant that was produced
	Request       dns.Header    // Decoded request header (zero if undecodable)
	Question      *dns.Question // Decoded question, nil when decoding failed
	Err           error         // Decode or encode failure behind an OutcomeServerError
}
