package types

import (
	"net"
	"strconv"
	"time"
)

// ClientConf describes the single endpoint a run talks to and how.
type ClientConf struct {
	Host           string        `ini:"host"`
	Port           int           `ini:"port"`
	PayloadLength  int           `ini:"payload_length"`
	ReadBufferSize int           `ini:"read_buffer_size"`
	DialTimeout    time.Duration `ini:"dial_timeout"` // 0 = wait for the OS
	ReadTimeout    time.Duration `ini:"read_timeout"` // 0 = block until the peer replies

	// Optional upstream SOCKS5 proxy, empty means direct TCP.
	Socks5Addr     string `ini:"socks5_addr"`
	Socks5User     string `ini:"socks5_user"`
	Socks5Password string `ini:"socks5_password"`
}

// Address returns host:port, bracketing IPv6 literals.
func (c ClientConf) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config is the unified configuration loaded from echoprobe.ini.
type Config struct {
	ClientConf `ini:"client"`
	LogConf    `ini:"log"`
}
