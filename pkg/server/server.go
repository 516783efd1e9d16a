// Package server accepts touch event connections and feeds each one through
// its own decode and mapping loop.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"github.com/kamrankamilli/touchfwd/pkg/config"
	"github.com/kamrankamilli/touchfwd/pkg/internal/log"
	"github.com/kamrankamilli/touchfwd/pkg/protocol"
)

var (
	// ErrAlreadyStarted is returned by Start on a listening server.
	ErrAlreadyStarted = errors.New("server already started")
	// ErrNotStarted is returned by Addr on a stopped server.
	ErrNotStarted = errors.New("server not started")
)

// acceptBackoff is the pause after a transient accept error.
const acceptBackoff = 50 * time.Millisecond

// State is the lifecycle state of a Server.
type State int32

const (
	StateStopped State = iota
	StateListening
)

func (s State) String() string {
	if s == StateListening {
		return "listening"
	}
	return "stopped"
}

// Handler receives decoded events. Errors are logged and do not end the
// session. ctx is cancelled when the server stops.
type Handler interface {
	Map(ctx context.Context, ev protocol.TouchEvent) error
}

// Opts represents options for building a new server.
type Opts struct {
	// Addr is the TCP listen address.
	Addr string
	// Handler receives every decoded event.
	Handler Handler
	// ReadChunk bounds the size of a single socket read.
	ReadChunk int
	// MaxBuffer caps the unread bytes a session may hold.
	MaxBuffer int
	// MaxSessions caps concurrent sessions. Zero means unlimited.
	MaxSessions int
	// IdleTimeout closes sessions that send nothing for this long. Zero
	// disables it.
	IdleTimeout time.Duration
}

// Server is the touch event listener.
type Server struct {
	opts   Opts
	logger *log.Logger

	state atomic.Int32

	// mu serializes Start and Stop.
	mu         sync.Mutex
	ln         net.Listener
	cancel     context.CancelFunc
	acceptDone chan struct{}
	sessions   *errgroup.Group

	connMu      sync.RWMutex
	connections map[*Conn]struct{}
}

// New returns a stopped server.
func New(opts *Opts) *Server {
	o := *opts
	if o.ReadChunk <= 0 {
		o.ReadChunk = config.DefaultReadChunk
	}
	if o.MaxBuffer == 0 {
		o.MaxBuffer = config.DefaultMaxBuffer
	}
	return &Server{
		opts:        o,
		logger:      log.With("component", "server"),
		connections: make(map[*Conn]struct{}),
	}
}

// State returns the current lifecycle state.
func (s *Server) State() State { return State(s.state.Load()) }

// Addr returns the bound listen address.
func (s *Server) Addr() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil, ErrNotStarted
	}
	return s.ln.Addr(), nil
}

// Sessions returns the number of open sessions.
func (s *Server) Sessions() int {
	s.connMu.RLock()
	defer s.connMu.RUnlock()
	return len(s.connections)
}

// Start binds the listen address and begins accepting connections in the
// background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() == StateListening {
		return ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}
	if s.opts.MaxSessions > 0 {
		ln = netutil.LimitListener(ln, s.opts.MaxSessions)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.ln = ln
	s.cancel = cancel
	s.acceptDone = make(chan struct{})
	s.sessions = &errgroup.Group{}
	s.state.Store(int32(StateListening))

	s.logger.Infof("Input handler listening on %s", ln.Addr())
	go s.acceptLoop(ctx, ln)
	return nil
}

// Stop closes the listener and every open session, then waits for all
// session loops to exit. Stopping a stopped server is a no-op.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() != StateListening {
		return nil
	}
	s.state.Store(int32(StateStopped))
	s.cancel()

	err := s.ln.Close()
	if errors.Is(err, net.ErrClosed) {
		err = nil
	}
	<-s.acceptDone

	s.CloseAllConnections()
	_ = s.sessions.Wait()

	s.ln = nil
	s.logger.Info("Input handler stopped")
	return err
}

// ListenAndServe starts the server and blocks until ctx is done, then stops it.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return s.Stop()
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) {
	defer close(s.acceptDone)
	for {
		c, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Errorf("Accept error: %s", err)
			select {
			case <-time.After(acceptBackoff):
				continue
			case <-ctx.Done():
				return
			}
		}

		conn := s.newConn(c)
		s.sessions.Go(func() error {
			conn.serve(ctx)
			return nil
		})
	}
}
