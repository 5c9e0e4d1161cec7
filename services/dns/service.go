package dns

import (
	"context"
	"net"
	"time"

	"github.com/DhanushPillay/MailSpectre/interfaces"
)

const defaultLookupTimeout = 5 * time.Second

type dnsService struct {
	resolver *net.Resolver
	timeout  time.Duration
}

func NewDNSService(timeout time.Duration) interfaces.DNSResolver {
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &dnsService{
		resolver: &net.Resolver{},
		timeout:  timeout,
	}
}

func (s *dnsService) LookupA(ctx context.Context, domain string) ([]net.IP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	addrs, err := s.resolver.LookupIP(ctx, "ip", domain)
	if err != nil {
		return nil, err
	}
	return addrs, nil
}

func (s *dnsService) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.resolver.LookupMX(ctx, domain)
}
