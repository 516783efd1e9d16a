package server

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kamrankamilli/touchfwd/pkg/internal/log"
	"github.com/kamrankamilli/touchfwd/pkg/protocol"
)

type nopHandler struct{}

func (nopHandler) Map(context.Context, protocol.TouchEvent) error { return nil }

// deadlineConn is a net.Conn whose read deadline cannot be set.
type deadlineConn struct {
	net.Conn
	closed atomic.Bool
}

func (c *deadlineConn) SetReadDeadline(time.Time) error {
	return errors.New("deadline not supported")
}

func (c *deadlineConn) Close() error {
	c.closed.Store(true)
	return c.Conn.Close()
}

func TestConn_DeadlineFailureEndsSession(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log.Replace(zap.New(core))

	local, remote := net.Pipe()
	defer remote.Close()
	fake := &deadlineConn{Conn: local}

	s := New(&Opts{Handler: nopHandler{}, IdleTimeout: time.Minute})
	conn := s.newConn(fake)
	require.Equal(t, 1, s.Sessions())

	done := make(chan struct{})
	go func() {
		conn.serve(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session kept reading without a deadline")
	}
	assert.True(t, fake.closed.Load())
	assert.Equal(t, 0, s.Sessions())
	assert.Equal(t, 1, logs.FilterMessageSnippet("Failed to set read deadline").Len())
}
