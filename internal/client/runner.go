// Package client performs one connect, send, receive, close exchange with a
// TCP peer and reports what happened.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/proxy"

	"echoprobe/internal/payload"
	"echoprobe/internal/shared"
	"echoprobe/internal/shared/logger"
	"echoprobe/internal/shared/types"
)

// Runner executes single exchanges against the configured endpoint.
type Runner struct {
	cfg    types.ClientConf
	dialer proxy.ContextDialer
	out    io.Writer
	logger zerolog.Logger
}

// NewRunner creates a Runner that prints its progress lines to out.
func NewRunner(cfg types.ClientConf, out io.Writer) (*Runner, error) {
	dialer, err := newDialer(cfg)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:    cfg,
		dialer: dialer,
		out:    out,
		logger: logger.WithComponent("client"),
	}, nil
}

// Run generates a payload, sends it and reads back one chunk of at most
// ReadBufferSize bytes. It never loops to reassemble a longer reply.
//
// Errors never escape: they are printed and folded into the Result. With no
// ReadTimeout a silent peer blocks Run until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) *Result {
	res := &Result{
		RunID:   uuid.New().String(),
		Host:    r.cfg.Host,
		Port:    r.cfg.Port,
		Payload: payload.Generate(r.cfg.PayloadLength),
	}
	addr := r.cfg.Address()
	rep := reporter{w: r.out}
	log := r.logger.With().Str("run_id", res.RunID).Str("endpoint", addr).Logger()

	err := r.exchange(ctx, res, rep, log)
	switch {
	case err == nil:
		res.Outcome = OutcomeSuccess
	case isConnRefused(err):
		res.Outcome = OutcomeRefused
		res.Cause = err
		rep.refused(addr)
	default:
		res.Outcome = OutcomeFailure
		res.Cause = err
		rep.failed(err)
	}

	var ev *zerolog.Event
	if res.Outcome == OutcomeSuccess {
		ev = log.Info()
	} else {
		ev = log.Warn().Err(res.Cause)
	}
	ev.Str("outcome", res.Outcome.String()).
		Uint64("bytes_sent", res.BytesSent).
		Uint64("bytes_received", res.BytesReceived).
		Msg("Run finished.")
	return res
}

func (r *Runner) exchange(ctx context.Context, res *Result, rep reporter, log zerolog.Logger) error {
	addr := r.cfg.Address()
	log.Debug().Str("socks5", r.cfg.Socks5Addr).Msg("Dialing endpoint.")

	raw, err := r.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		// Through SOCKS5 the only TCP dial is to the proxy, so a refusal
		// there says nothing about the endpoint.
		if r.cfg.Socks5Addr != "" && isConnRefused(err) {
			return interrupted(ctx, fmt.Errorf("%w: %s (%v)", ErrProxyRefused, r.cfg.Socks5Addr, err))
		}
		return interrupted(ctx, fmt.Errorf("dial %s: %w", addr, err))
	}
	conn := shared.NewCountedConn(raw)
	defer func() {
		res.BytesSent = conn.Sent()
		res.BytesReceived = conn.Received()
		if cerr := conn.Close(); cerr != nil {
			log.Debug().Err(cerr).Msg("Failed to close connection.")
		}
	}()

	// The read deadline must be set before the cancel hook so that the hook's
	// immediate deadline always wins.
	if r.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(r.cfg.ReadTimeout)); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	rep.connected(addr)

	rep.sending(res.Payload)
	if _, err := conn.Write([]byte(res.Payload)); err != nil {
		return interrupted(ctx, fmt.Errorf("send: %w", err))
	}
	log.Debug().Int("bytes", len(res.Payload)).Msg("Payload sent.")

	buf := make([]byte, r.cfg.ReadBufferSize)
	n, err := conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return interrupted(ctx, fmt.Errorf("receive: %w", err))
	}
	if !utf8.Valid(buf[:n]) {
		return fmt.Errorf("decode %d bytes: %w", n, ErrInvalidUTF8)
	}

	res.Response = buf[:n]
	rep.received(string(res.Response))
	return nil
}

// interrupted attributes err to ctx when ctx ended first.
func interrupted(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}
