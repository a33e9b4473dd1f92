package nets

import (
	"net/http"
	"net/url"
	"time"
)

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	getURL GetProxyURL,
	isLocalAddr IsLocalAddr,
) HTTPClient {
	transport := &http.Transport{
		DialContext: dialer.DialContext,
		Proxy: func(req *http.Request) (*url.URL, error) {
			u, err := getURL()
			if err != nil {
				return nil, err
			}
			if !isHTTPProxy(u) {
				return nil, nil
			}
			if isLocal, err := isLocalAddr(req.URL.Host); err != nil {
				return nil, err
			} else if isLocal {
				return nil, nil
			}
			return u, nil
		},
	}
	return &http.Client{
		Transport: transport,
		Timeout:   time.Minute,
	}
}
