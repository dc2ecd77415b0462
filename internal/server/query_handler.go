// Package server runs the DNS listener and turns datagrams into replies.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrWebMD/hamurai-name-server/internal/resolvers"
)

// QueryHandler runs one request through the dispatcher, recovering from
// panics and recording statistics.
type QueryHandler struct {
	Logger     *slog.Logger          // Optional logger for debug output
	Dispatcher *resolvers.Dispatcher // Builds the reply
	Stats      *DNSStats             // Optional statistics sink
}

// HandleResult contains the outcome of query processing.
type HandleResult struct {
	ResponseBytes []byte            // Serialized DNS response, never empty
	Outcome       resolvers.Outcome // Response variant that was produced
	Latency       time.Duration     // Time spent building the reply
}

// Handle processes a DNS request and returns the reply to send.
//
// A panic inside the dispatcher is recovered and answered with SERVFAIL,
// so one bad datagram cannot stop the listener.
func (h *QueryHandler) Handle(ctx context.Context, transport string, src string, payload []byte) (out HandleResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			if h.Logger != nil {
				h.Logger.Error("panic while handling dns request",
					"transport", transport,
					"src", src,
					"panic", r,
				)
			}
			if h.Stats != nil {
				h.Stats.RecordPanic()
			}
			res := resolvers.ServerFailure(payload, fmt.Errorf("panic: %v", r))
			out = h.finish(ctx, transport, src, payload, res, start)
		}
	}()

	if h.Dispatcher == nil {
		panic("server.QueryHandler: dispatcher is nil")
	}
	res := h.Dispatcher.Dispatch(payload)
	return h.finish(ctx, transport, src, payload, res, start)
}

func (h *QueryHandler) finish(
	ctx context.Context,
	transport, src string,
	payload []byte,
	res resolvers.Result,
	start time.Time,
) HandleResult {
	latency := time.Since(start)
	if h.Stats != nil {
		h.Stats.Record(res.Outcome, len(payload), len(res.ResponseBytes), latency)
	}
	h.logRequest(ctx, transport, src, len(payload), res)
	return HandleResult{ResponseBytes: res.ResponseBytes, Outcome: res.Outcome, Latency: latency}
}

// logRequest logs DNS request details at debug level.
func (h *QueryHandler) logRequest(ctx context.Context, transport, src string, reqLen int, res resolvers.Result) {
	if h.Logger == nil || !h.Logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []any{
		"transport", transport,
		"src", src,
		"id", int(res.Request.ID),
		"outcome", res.Outcome.String(),
		"bytes", reqLen,
		"reply_bytes", len(res.ResponseBytes),
	}
	if res.Question != nil {
		attrs = append(attrs, "qname", res.Question.Name, "qtype", res.Question.Type.String())
	}
	if res.Err != nil {
		attrs = append(attrs, "err", res.Err)
	}
	h.Logger.Debug("dns request", attrs...)
	h.Logger.Debug("dns request header", "header", res.Request)
}
