package nets

import (
	"context"
	"net"
)

type IsLocalAddr func(addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if host == "localhost" {
			return true
		}
		ip := net.ParseIP(host)
		return ip != nil && (ip.IsLoopback() || ip.IsPrivate())
	}
}

type DialContext func(ctx context.Context, network, addr string) (net.Conn, error)

// DialContext connects local addresses directly and everything else through the proxy.
func (Module) DialContext(
	getProxyDialer GetProxyDialer,
	isLocal IsLocalAddr,
) DialContext {
	var direct net.Dialer
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		if isLocal(addr) {
			return direct.DialContext(ctx, network, addr)
		}
		dialer, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		return dialer.DialContext(ctx, network, addr)
	}
}
