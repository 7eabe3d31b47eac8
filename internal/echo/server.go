// Package echo is the peer side of the exchange: for each accepted
// connection it reads one chunk, writes it back and hangs up.
package echo

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"echoprobe/internal/shared/logger"
)

// Server echoes one chunk per connection.
type Server struct {
	bufferSize   int
	writeTimeout time.Duration
	logger       zerolog.Logger
	wg           sync.WaitGroup
}

// New creates a Server reading at most bufferSize bytes per connection.
func New(bufferSize int) *Server {
	return &Server{
		bufferSize:   bufferSize,
		writeTimeout: 5 * time.Second,
		logger:       logger.WithComponent("echo"),
	}
}

// Serve accepts connections until ln is closed. Closing the listener is the
// normal way to stop it and makes Serve return nil once handlers finish.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("Listening.")
	defer s.wg.Wait()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Error().Err(err).Msg("Accept error.")
			return err
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	log := s.logger.With().Str("remote", conn.RemoteAddr().String()).Logger()

	buf := make([]byte, s.bufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		log.Warn().Err(err).Msg("Read failed.")
		return
	}
	_ = conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	if _, err := conn.Write(buf[:n]); err != nil {
		log.Warn().Err(err).Msg("Write failed.")
		return
	}
	log.Debug().Int("bytes", n).Msg("Echoed.")
}
