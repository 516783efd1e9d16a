package server

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/kamrankamilli/touchfwd/pkg/buffer"
	"github.com/kamrankamilli/touchfwd/pkg/internal/log"
	"github.com/kamrankamilli/touchfwd/pkg/protocol"
)

// Conn represents a client connection.
type Conn struct {
	c      net.Conn
	s      *Server
	dec    *protocol.Decoder
	logger *log.Logger
}

func (s *Server) newConn(c net.Conn) *Conn {
	conn := &Conn{
		c:      c,
		s:      s,
		dec:    protocol.NewDecoder(s.opts.MaxBuffer),
		logger: log.With("component", "session", "peer", c.RemoteAddr().String()),
	}

	s.connMu.Lock()
	s.connections[conn] = struct{}{}
	s.connMu.Unlock()

	conn.logger.Info("Connection accepted")
	return conn
}

func (c *Conn) serve(ctx context.Context) {
	defer func() {
		c.c.Close()
		c.s.removeConn(c)
	}()

	for ctx.Err() == nil {
		if c.s.opts.IdleTimeout > 0 {
			if err := c.c.SetReadDeadline(time.Now().Add(c.s.opts.IdleTimeout)); err != nil {
				c.logger.Errorf("Failed to set read deadline, closing session: %s", err)
				return
			}
		}
		n, readErr := c.dec.ReadFrom(c.c, c.s.opts.ReadChunk)
		if n > 0 {
			c.logger.Debugw("Read", "bytes", n, "buffered", c.dec.Buffered())
			if err := c.drain(ctx); err != nil {
				c.logger.Errorf("Protocol error, closing session: %s", err)
				return
			}
		}
		if readErr != nil {
			c.logReadErr(ctx, readErr)
			return
		}
	}
	c.logger.Info("Session stopped")
}

// drain maps every complete record currently buffered, in order.
func (c *Conn) drain(ctx context.Context) error {
	for ev, err := range c.dec.Events() {
		if err != nil {
			return err
		}
		c.logger.Debugw("Touch event", "event", ev)
		if err := c.s.opts.Handler.Map(ctx, ev); err != nil {
			c.logger.Warningf("Error executing input command: %s", err)
		}
	}
	return nil
}

func (c *Conn) logReadErr(ctx context.Context, err error) {
	var netErr net.Error
	switch {
	case errors.Is(err, io.EOF):
		if left := c.dec.Buffered(); left > 0 {
			c.logger.Warningf("Client disconnected with %d bytes of a partial record", left)
			return
		}
		c.logger.Info("Client disconnected")
	case ctx.Err() != nil:
		c.logger.Info("Session stopped")
	case errors.Is(err, buffer.ErrBufferFull):
		c.logger.Errorf("Closing session: %s", err)
	case errors.As(err, &netErr) && netErr.Timeout():
		c.logger.Warningf("Closing idle session: %s", err)
	default:
		c.logger.Errorf("Client read error: %s", err)
	}
}

func (s *Server) removeConn(conn *Conn) {
	s.connMu.Lock()
	delete(s.connections, conn)
	s.connMu.Unlock()
}

// CloseAllConnections closes every open session socket, unblocking their reads.
func (s *Server) CloseAllConnections() {
	s.connMu.RLock()
	connections := make([]*Conn, 0, len(s.connections))
	for conn := range s.connections {
		connections = append(connections, conn)
	}
	s.connMu.RUnlock()

	for _, conn := range connections {
		conn.c.Close()
	}
}
