// Package zone holds the single domain this server is authoritative for.
package zone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MrWebMD/hamurai-name-server/internal/dns"
)

// DefaultTTL is the answer TTL used when none is configured.
const DefaultTTL uint32 = 10

// Zone is the one configured record: a domain answered with a fixed IPv4 address.
// It is read-only once built and safe to share between goroutines.
type Zone struct {
	Domain  string
	Address dns.IPv4RData
	TTL     uint32
}

// New validates and builds a Zone. A ttl of 0 falls back to DefaultTTL.
func New(domain, address string, ttl uint32) (*Zone, error) {
	domain = strings.TrimSuffix(strings.TrimSpace(domain), ".")
	if domain == "" {
		return nil, errors.New("zone domain must be non-empty")
	}
	if _, err := dns.EncodeName(domain); err != nil {
		return nil, fmt.Errorf("invalid zone domain %q: %w", domain, err)
	}
	addr, err := dns.NewIPv4RData(strings.TrimSpace(address))
	if err != nil {
		return nil, fmt.Errorf("invalid zone address: %w", err)
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Zone{Domain: domain, Address: addr, TTL: ttl}, nil
}

// Matches reports whether name belongs to the zone.
//
// The test is a case-sensitive prefix match against the configured domain,
// so "ricklantis.com" and "ricklantis.community" match a zone of
// "ricklantis.com" while "www.ricklantis.com" does not.
func (z *Zone) Matches(name string) bool {
	return strings.HasPrefix(name, z.Domain)
}

func (z *Zone) String() string {
	return fmt.Sprintf("%s %d IN A %s", z.Domain, z.TTL, z.Address.Addr)
}
