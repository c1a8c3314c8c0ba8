package util

import (
	"net/http"
	"net/url"
)

// NewProxyFunc returns a proxy selector for an http.Transport. With no
// explicit proxy URLs the standard environment variables apply; otherwise
// the scheme-matching URL wins and the environment is the fallback.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}
	return func(req *http.Request) (*url.URL, error) {
		selected := httpProxy
		if req.URL.Scheme == "https" && httpsProxy != "" {
			selected = httpsProxy
		}
		if selected == "" {
			return http.ProxyFromEnvironment(req)
		}
		return url.Parse(selected)
	}
}
