package classify

import (
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http/httpproxy"
)

// newHTTPClient builds the client shared by the HTTP-based providers.
// Explicit proxy settings override HTTP_PROXY, HTTPS_PROXY and NO_PROXY.
func newHTTPClient(cfg Config, defaultTimeout time.Duration) *http.Client {
	proxyCfg := httpproxy.FromEnvironment()
	if cfg.HTTPProxy != "" {
		proxyCfg.HTTPProxy = cfg.HTTPProxy
	}
	if cfg.HTTPSProxy != "" {
		proxyCfg.HTTPSProxy = cfg.HTTPSProxy
	}
	if cfg.NoProxy != "" {
		proxyCfg.NoProxy = cfg.NoProxy
	}
	proxyFunc := proxyCfg.ProxyFunc()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		return proxyFunc(req.URL)
	}

	var rt http.RoundTripper = transport
	if cfg.UserAgent != "" {
		rt = &userAgentTransport{next: transport, userAgent: cfg.UserAgent}
	}

	return &http.Client{
		Timeout:   cfg.timeout(defaultTimeout),
		Transport: rt,
	}
}

type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.next.RoundTrip(req)
}
