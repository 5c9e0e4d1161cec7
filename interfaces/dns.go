package interfaces

import (
	"context"
	"net"
)

// DNSResolver is the boundary to DNS. Implementations convert resolver
// failures (NXDOMAIN, timeout, SERVFAIL) into returned errors; callers
// decide the fail-open/fail-closed policy.
type DNSResolver interface {
	LookupA(ctx context.Context, domain string) ([]net.IP, error)
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}
