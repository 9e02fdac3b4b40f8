package utils

import (
	"net"
	"net/http"
)

// ClientIP extracts the remote host address of an HTTP request, without the
// port. The value is recorded on session rows at login time.
//
// X-Forwarded-For is intentionally not consulted: the application is
// designed to run without a trusted reverse proxy, and honouring the header
// would let clients spoof the recorded address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
