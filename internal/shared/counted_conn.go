package shared

import (
	"net"
	"sync/atomic"
)

// CountedConn wraps a net.Conn and atomically counts the bytes written to and
// read from the peer.
type CountedConn struct {
	net.Conn
	sent     atomic.Uint64
	received atomic.Uint64
}

// NewCountedConn creates a new CountedConn around conn.
func NewCountedConn(conn net.Conn) *CountedConn {
	return &CountedConn{Conn: conn}
}

// Read reads from the underlying connection and adds to the received count.
func (c *CountedConn) Read(b []byte) (int, error) {
	n, err := c.Conn.Read(b)
	if n > 0 {
		c.received.Add(uint64(n))
	}
	return n, err
}

// Write writes to the underlying connection and adds to the sent count.
func (c *CountedConn) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	if n > 0 {
		c.sent.Add(uint64(n))
	}
	return n, err
}

// Sent returns the number of bytes written so far.
func (c *CountedConn) Sent() uint64 { return c.sent.Load() }

// Received returns the number of bytes read so far.
func (c *CountedConn) Received() uint64 { return c.received.Load() }
