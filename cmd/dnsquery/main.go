package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	mdns "github.com/miekg/dns"

	"github.com/MrWebMD/hamurai-name-server/internal/dns"
)

func main() {
	var (
		server  = flag.String("server", "127.0.0.1:53", "DNS server HOST:PORT")
		name    = flag.String("name", "ricklantis.com", "Query name")
		qtype   = flag.String("qtype", "A", "Query type (A, OPT, MX, ... or a number)")
		timeout = flag.Duration("timeout", 2*time.Second, "Timeout")
		quiet   = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
	)
	flag.Parse()

	resp, rtt, err := query(*server, *name, *qtype, *timeout)
	if err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "dnsquery error: %v\n", err)
		}
		os.Exit(1)
	}
	if *quiet {
		return
	}

	// Named with this server's codes, where SERVFAIL is 1.
	fmt.Printf("id=%d rcode=%s aa=%t answers=%d rtt=%s\n",
		resp.Id,
		dns.RCode(resp.Rcode).String(), //nolint:gosec // rcode is 4 bits

		resp.Authoritative,
		len(resp.Answer),
		rtt,
	)
	for _, rr := range resp.Answer {
		fmt.Println(rr.String())
	}
}

func query(server, name, qtype string, timeout time.Duration) (*mdns.Msg, time.Duration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, 0, errors.New("name required")
	}
	t, err := parseType(qtype)
	if err != nil {
		return nil, 0, err
	}

	m := new(mdns.Msg)
	m.SetQuestion(mdns.Fqdn(name), t)
	c := &mdns.Client{Net: "udp", Timeout: timeout}
	return c.Exchange(m, server)
}

func parseType(s string) (uint16, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if t, ok := mdns.StringToType[s]; ok {
		return t, nil
	}
	var n uint16
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
		return n, nil
	}
	return 0, fmt.Errorf("unknown query type %q", s)
}
