package nets

import (
	"context"
	"fmt"
	"net"

	"github.com/reusee/taibf/logs"
)

// Dialer opens connections for program downloads. Local addresses are dialed
// directly, others through the configured proxy.
type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

func (Module) Dialer(
	getProxyDialer GetProxyDialer,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) Dialer {
	return &routeDialer{
		getProxyDialer: getProxyDialer,
		isLocalAddr:    isLocalAddr,
		logger:         logger,
	}
}

type routeDialer struct {
	direct         net.Dialer
	getProxyDialer GetProxyDialer
	isLocalAddr    IsLocalAddr
	logger         logs.Logger
}

var _ Dialer = new(routeDialer)

func (d *routeDialer) DialContext(ctx context.Context, network string, addr string) (net.Conn, error) {
	isLocal, err := d.isLocalAddr(addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if isLocal {
		d.logger.DebugContext(ctx, "dial", "addr", addr, "route", "direct")
		return d.direct.DialContext(ctx, network, addr)
	}
	proxyDialer, err := d.getProxyDialer()
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	d.logger.DebugContext(ctx, "dial", "addr", addr, "route", "proxy")
	return proxyDialer.DialContext(ctx, network, addr)
}

func (d *routeDialer) Dial(network string, addr string) (net.Conn, error) {
	return d.DialContext(context.Background(), network, addr)
}
