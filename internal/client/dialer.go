package client

import (
	"fmt"
	"net"

	"golang.org/x/net/proxy"

	"echoprobe/internal/shared/types"
)

// newDialer returns a plain TCP dialer, or one that tunnels through the
// configured SOCKS5 proxy.
func newDialer(cfg types.ClientConf) (proxy.ContextDialer, error) {
	direct := &net.Dialer{Timeout: cfg.DialTimeout}
	if cfg.Socks5Addr == "" {
		return direct, nil
	}

	var auth *proxy.Auth
	if cfg.Socks5User != "" {
		auth = &proxy.Auth{User: cfg.Socks5User, Password: cfg.Socks5Password}
	}
	d, err := proxy.SOCKS5("tcp", cfg.Socks5Addr, auth, direct)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOCKS5 dialer for %s: %w", cfg.Socks5Addr, err)
	}
	cd, ok := d.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("SOCKS5 dialer for %s does not support contexts", cfg.Socks5Addr)
	}
	return cd, nil
}
