package server

import (
	"sync/atomic"
	"time"

	"github.com/MrWebMD/hamurai-name-server/internal/resolvers"
)

// DNSStats collects DNS query statistics.
// All methods are safe for concurrent use.
type DNSStats struct {
	queriesTotal   atomic.Uint64
	answersA       atomic.Uint64
	answersOPT     atomic.Uint64
	notImplemented atomic.Uint64
	nameErrors     atomic.Uint64
	serverErrors   atomic.Uint64
	panics         atomic.Uint64
	bytesIn        atomic.Uint64
	bytesOut       atomic.Uint64
	latencyTotalNs atomic.Uint64
}

// NewDNSStats creates a new DNS statistics collector.
func NewDNSStats() *DNSStats {
	return &DNSStats{}
}

// Record counts one handled datagram.
func (s *DNSStats) Record(outcome resolvers.Outcome, in, out int, latency time.Duration) {
	s.queriesTotal.Add(1)
	switch outcome {
	case resolvers.OutcomeAnswerA:
		s.answersA.Add(1)
	case resolvers.OutcomeAnswerOPT:
		s.answersOPT.Add(1)
	case resolvers.OutcomeNotImplemented:
		s.notImplemented.Add(1)
	case resolvers.OutcomeNameError:
		s.nameErrors.Add(1)
	case resolvers.OutcomeServerError:
		s.serverErrors.Add(1)
	}
	s.bytesIn.Add(uint64(max(in, 0)))
	s.bytesOut.Add(uint64(max(out, 0)))
	if latency > 0 {
		s.latencyTotalNs.Add(uint64(latency))
	}
}

// RecordPanic counts a recovered handler panic.
func (s *DNSStats) RecordPanic() {
	s.panics.Add(1)
}

// DNSStatsSnapshot is a point-in-time snapshot of DNS server statistics.
type DNSStatsSnapshot struct {
	QueriesTotal   uint64
	AnswersA       uint64
	AnswersOPT     uint64
	NotImplemented uint64
	NameErrors     uint64
	ServerErrors   uint64
	Panics         uint64
	BytesIn        uint64
	BytesOut       uint64
	AvgLatencyMs   float64
}

// Snapshot returns the current statistics.
func (s *DNSStats) Snapshot() DNSStatsSnapshot {
	total := s.queriesTotal.Load()
	latencyNs := s.latencyTotalNs.Load()

	avgLatencyMs := 0.0
	if total > 0 {
		avgLatencyMs = float64(latencyNs) / float64(total) / 1e6
	}

	return DNSStatsSnapshot{
		QueriesTotal:   total,
		AnswersA:       s.answersA.Load(),
		AnswersOPT:     s.answersOPT.Load(),
		NotImplemented: s.notImplemented.Load(),
		NameErrors:     s.nameErrors.Load(),
		ServerErrors:   s.serverErrors.Load(),
		Panics:         s.panics.Load(),
		BytesIn:        s.bytesIn.Load(),
		BytesOut:       s.bytesOut.Load(),
		AvgLatencyMs:   avgLatencyMs,
	}
}
