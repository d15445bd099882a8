package api

import (
	"net/http"
	"strings"

	"goldloan-portal/internal/core/session"
)

// publicSegments mark paths that never carry the session bearer
var publicSegments = []string{"/auth/", "/bullion/"}

// IsPublicPath reports whether path is exempt from bearer attachment
func IsPublicPath(path string) bool {
	for _, seg := range publicSegments {
		if strings.Contains(path, seg) {
			return true
		}
	}
	return false
}

// bearerTransport attaches the credential of the session carried by the
// request context to every non-public request
type bearerTransport struct {
	base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if IsPublicPath(req.URL.Path) || req.Header.Get("Authorization") != "" {
		return t.base.RoundTrip(req)
	}

	sess := session.FromContext(req.Context())
	if sess == nil {
		return t.base.RoundTrip(req)
	}
	credential := sess.Credential()
	if credential == "" {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not mutate the caller's request
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+credential)
	return t.base.RoundTrip(clone)
}
