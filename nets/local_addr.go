package nets

import "net"

// IsLocalAddr reports whether addr resolves to a loopback or private address.
// Unresolvable hosts are treated as remote.
type IsLocalAddr func(addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if host == "localhost" {
			return true, nil
		}

		var ips []net.IP
		if ip := net.ParseIP(host); ip != nil {
			ips = append(ips, ip)
		} else {
			ips, err = net.LookupIP(host)
			if err != nil {
				return false, nil
			}
		}

		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true, nil
			}
		}
		return false, nil
	}
}
