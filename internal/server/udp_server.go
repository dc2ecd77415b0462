package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrWebMD/hamurai-name-server/internal/dns"
	"github.com/MrWebMD/hamurai-name-server/internal/pool"
)

// readTimeout bounds each read so the loop notices cancellation.
const readTimeout = 1 * time.Second

// bufferPool holds receive buffers sized for one classic DNS datagram.
// Longer datagrams are truncated by the read.
var bufferPool = pool.NewBuffers(dns.MaxUDPMessageSize)

// UDPServer handles DNS queries over UDP.
//
// Datagrams are handled one at a time in arrival order: read, dispatch,
// reply, then read the next one. The reply goes to the datagram's source
// address as-is. A UDPServer runs once.
type UDPServer struct {
	Logger  *slog.Logger  // Optional logger
	Handler *QueryHandler // Query processor

	conn    atomic.Pointer[net.UDPConn]
	running sync.WaitGroup
	started chan struct{}
	once    sync.Once
}

func (s *UDPServer) init() {
	s.once.Do(func() { s.started = make(chan struct{}) })
}

// Run starts the UDP server, listening on the given address.
func (s *UDPServer) Run(ctx context.Context, addr string) error {
	conn, err := listenUDPReuseAddr(ctx, addr)
	if err != nil {
		return fmt.Errorf("udp listen %s: %w", addr, err)
	}
	return s.RunOnConn(ctx, conn)
}

// RunOnConn runs the server on an existing UDP connection until ctx is
// canceled or Stop is called. The connection is closed on return.
//
// Request processing flow:
//  1. Read a datagram into a pooled buffer (1s deadline for shutdown checks)
//  2. Hand it to the QueryHandler
//  3. Write the reply to the source address
func (s *UDPServer) RunOnConn(ctx context.Context, conn *net.UDPConn) error {
	s.init()
	s.running.Add(1)
	defer s.running.Done()
	defer conn.Close()

	s.conn.Store(conn)
	close(s.started)

	for ctx.Err() == nil {
		if err := s.serveOne(ctx, conn); err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil // stopped
			}
			if s.Logger != nil {
				s.Logger.Warn("udp read failed", "err", err)
			}
		}
	}
	return nil
}

// serveOne reads and answers a single datagram. A read timeout is not an error.
func (s *UDPServer) serveOne(ctx context.Context, conn *net.UDPConn) error {
	bufPtr := bufferPool.Get()
	defer bufferPool.Put(bufPtr)
	buf := *bufPtr

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	n, remote, err := conn.ReadFromUDP(buf)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	if remote == nil || s.Handler == nil {
		return nil
	}

	res := s.Handler.Handle(ctx, "udp", remote.String(), buf[:n])
	if _, err := conn.WriteToUDP(res.ResponseBytes, remote); err != nil && s.Logger != nil {
		s.Logger.Debug("udp write failed", "peer", remote.String(), "err", err)
	}
	return nil
}

// Addr returns the bound address once the server has started, or nil.
func (s *UDPServer) Addr() net.Addr {
	if c := s.conn.Load(); c != nil {
		return c.LocalAddr()
	}
	return nil
}

// Started is closed once the server is bound and reading.
func (s *UDPServer) Started() <-chan struct{} {
	s.init()
	return s.started
}

// Stop closes the socket and waits up to timeout for the read loop to exit.
// A non-positive timeout waits indefinitely.
func (s *UDPServer) Stop(timeout time.Duration) error {
	conn := s.conn.Load()
	if conn == nil {
		return nil
	}
	_ = conn.Close()

	if timeout <= 0 {
		s.running.Wait()
		return nil
	}

	done := make(chan struct{})
	go func() {
		s.running.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return errors.New("udp server: timeout waiting for read loop to exit")
	}
}
