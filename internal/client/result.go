package client

import "errors"

// ErrInvalidUTF8 is returned when the peer's reply cannot be decoded as UTF-8.
var ErrInvalidUTF8 = errors.New("response is not valid UTF-8")

// ErrProxyRefused is returned when the configured SOCKS5 proxy refuses the
// connection. It is a Failure, not OutcomeRefused.
var ErrProxyRefused = errors.New("SOCKS5 proxy refused the connection")

// Outcome classifies how a run ended.
type Outcome int

const (
	// OutcomeSuccess means the payload was sent and one reply chunk decoded.
	OutcomeSuccess Outcome = iota
	// OutcomeRefused means nothing was listening at the endpoint.
	OutcomeRefused
	// OutcomeFailure covers every other dial, send, receive or decode error.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRefused:
		return "connection_refused"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is everything a single run produced.
type Result struct {
	RunID   string
	Outcome Outcome

	Host string
	Port int

	Payload  string
	Response []byte // set only on OutcomeSuccess

	BytesSent     uint64
	BytesReceived uint64

	Cause error // nil on OutcomeSuccess
}
