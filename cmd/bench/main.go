package main

import (
	"flag"
	"fmt"
	"net"
	"slices"
	"sync"
	"time"

	"github.com/MrWebMD/hamurai-name-server/internal/dns"
	"github.com/MrWebMD/hamurai-name-server/internal/helpers"
)

func main() {
	var (
		server      = flag.String("server", "127.0.0.1:53", "DNS server HOST:PORT")
		name        = flag.String("name", "ricklantis.com", "Query name")
		qtype       = flag.Uint("qtype", uint(dns.TypeA), "Query type (numeric, A=1)")
		concurrency = flag.Int("concurrency", 50, "Number of concurrent workers")
		requests    = flag.Int("requests", 20000, "Total number of requests")
		timeout     = flag.Duration("timeout", 2*time.Second, "Per-request timeout")
	)
	flag.Parse()

	addr, err := net.ResolveUDPAddr("udp", *server)
	if err != nil {
		panic(err)
	}

	reqBytes, err := buildQuery(*name, dns.RecordType(helpers.ClampIntToUint16(int(*qtype)))) //nolint:gosec // flag value
	if err != nil {
		panic(err)
	}

	conc := helpers.ClampInt(*concurrency, 1, 4096)
	total := max(*requests, 1)
	per := total / conc
	rem := total % conc

	lat := make([]float64, 0, total)
	rcodes := make(map[dns.RCode]int)
	var mu sync.Mutex

	t0 := time.Now()
	var wg sync.WaitGroup
	for i := range conc {
		n := per
		if i < rem {
			n++
		}
		if n <= 0 {
			continue
		}
		wg.Go(func() {
			c, err := net.DialUDP("udp", nil, addr)
			if err != nil {
				return
			}
			defer c.Close()
			buf := make([]byte, dns.MaxUDPMessageSize)
			for range n {
				start := time.Now()
				_ = c.SetDeadline(time.Now().Add(*timeout))
				if _, err := c.Write(reqBytes); err != nil {
					continue
				}
				nn, err := c.Read(buf)
				if err != nil {
					continue
				}
				rc, ok := replyRCode(buf[:nn])
				if !ok {
					continue
				}
				ms := float64(time.Since(start).Microseconds()) / 1000.0
				mu.Lock()
				lat = append(lat, ms)
				rcodes[rc]++
				mu.Unlock()
			}
		})
	}
	wg.Wait()
	elapsed := time.Since(t0).Seconds()

	if len(lat) == 0 {
		fmt.Printf("no successful requests\n")
		return
	}
	slices.Sort(lat)
	qps := float64(len(lat)) / elapsed

	fmt.Printf("server=%s name=%q qtype=%d concurrency=%d requests=%d\n", *server, *name, *qtype, conc, len(lat))
	fmt.Printf("elapsed_s=%.3f qps=%.1f\n", elapsed, qps)
	fmt.Printf("latency_ms p50=%.3f p95=%.3f p99=%.3f min=%.3f max=%.3f\n",
		percentile(lat, 50), percentile(lat, 95), percentile(lat, 99), lat[0], lat[len(lat)-1])
	for rc, count := range rcodes {
		fmt.Printf("rcode=%s count=%d\n", rc, count)
	}
}

// replyRCode reads the response code of a reply. Datagrams shorter than a
// header are not replies.
func replyRCode(b []byte) (dns.RCode, bool) {
	off := 0
	h, err := dns.ParseHeader(b, &off)
	if err != nil {
		return 0, false
	}
	return h.RCode(), true
}

func percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted))*float64(p)/100.0) - 1
	return sorted[helpers.ClampInt(idx, 0, len(sorted)-1)]
}

func buildQuery(name string, qtype dns.RecordType) ([]byte, error) {
	m := dns.Message{
		Header:   dns.Header{}.WithID(0xBEEF).WithRecursionDesired(true),
		Question: &dns.Question{Name: name, Type: qtype, Class: dns.ClassIN},
	}
	return m.Marshal()
}
