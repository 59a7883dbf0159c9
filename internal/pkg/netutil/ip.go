// Package netutil resolves the address this process is reachable on when the
// orchestrator has not injected one.
package netutil

import (
	"net"
	"os"
)

// Sentinel values returned in place of an address.
const (
	NoIPFound     = "No IP found"
	UnableToGetIP = "Unable to get IP"
)

// Resolver looks up the first IPv4 address bound to the local host name.
type Resolver struct {
	Hostname func() (string, error)
	LookupIP func(host string) ([]net.IP, error)
}

// NewResolver returns a Resolver backed by the operating system.
func NewResolver() *Resolver {
	return &Resolver{
		Hostname: os.Hostname,
		LookupIP: net.LookupIP,
	}
}

// LocalIPv4 never fails; lookup problems are reported through the sentinels.
func (r *Resolver) LocalIPv4() string {
	host, err := r.Hostname()
	if err != nil {
		return UnableToGetIP
	}

	addrs, err := r.LookupIP(host)
	if err != nil {
		return UnableToGetIP
	}

	for _, ip := range addrs {
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return NoIPFound
}

// LocalIPv4 resolves using the operating system resolver.
func LocalIPv4() string {
	return NewResolver().LocalIPv4()
}
