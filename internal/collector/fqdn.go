package collector

import (
	"context"
	"net"
	"strings"
)

// resolveFQDN finds the host's fully-qualified name, best effort: forward
// resolve the hostname, then reverse resolve each address until a usable
// name appears. Any failure falls back to the bare hostname, which is
// always serviceable for display.
func resolveFQDN(ctx context.Context, hostname string) string {
	if hostname == "" {
		return hostname
	}

	r := net.DefaultResolver

	addrs, err := r.LookupIPAddr(ctx, hostname)
	if err != nil {
		return hostname
	}

	for _, addr := range addrs {
		names, err := r.LookupAddr(ctx, addr.IP.String())
		if err != nil {
			continue
		}
		for _, name := range names {
			if fqdn := strings.TrimSuffix(name, "."); usableFQDN(fqdn) {
				return fqdn
			}
		}
	}

	return hostname
}

// usableFQDN rejects reverse-DNS artifacts. Resolvers on home and lab
// networks routinely hand back PTR names like "1.0.168.192.in-addr.arpa",
// and a name without any dot adds nothing over the bare hostname.
func usableFQDN(name string) bool {
	if name == "" || !strings.Contains(name, ".") {
		return false
	}
	if strings.HasSuffix(name, ".in-addr.arpa") || strings.HasSuffix(name, ".ip6.arpa") {
		return false
	}
	return true
}
