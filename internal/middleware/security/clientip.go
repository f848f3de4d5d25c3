package security

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"boekhouding/internal/log"
)

var defaultTrustedProxies = []string{
	"127.0.0.0/8",
	"::1/128",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
}

// probePatterns are path fragments no page of this application uses.
var probePatterns = []string{
	"../", "..\\", "/.env", "/.git", "wp-admin", "wp-login",
	"phpmyadmin", ".php", "etc/passwd", "cgi-bin",
}

// Guard resolves client addresses and counts rejected probes.
type Guard struct {
	trusted []netip.Prefix
	logger  *log.Logger
	probes  atomic.Int64
}

// NewGuard creates a guard trusting loopback and private networks as proxies.
func NewGuard(logger *log.Logger) *Guard {
	if logger == nil {
		logger = log.Discard()
	}
	return &Guard{
		trusted: lo.Map(defaultTrustedProxies, func(cidr string, _ int) netip.Prefix {
			return netip.MustParsePrefix(cidr)
		}),
		logger: logger.WithComponent(log.ComponentSecurity),
	}
}

// AddTrustedProxy adds a trusted proxy network
func (g *Guard) AddTrustedProxy(cidr string) error {
	p, err := netip.ParsePrefix(cidr)
	if err != nil {
		return errors.Wrapf(err, "invalid CIDR %s", cidr)
	}
	g.trusted = append(g.trusted, p)
	return nil
}

// ClientIP returns the caller's address. Forwarding headers are honoured
// only when the direct peer is a trusted proxy.
func (g *Guard) ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	direct, err := netip.ParseAddr(host)
	if err != nil || !g.isTrusted(direct) {
		return host
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if _, err := netip.ParseAddr(first); err == nil {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if _, err := netip.ParseAddr(xri); err == nil {
			return xri
		}
	}
	return host
}

func (g *Guard) isTrusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	return lo.ContainsBy(g.trusted, func(p netip.Prefix) bool { return p.Contains(addr) })
}

// IsProbe reports whether the request looks like a vulnerability scan.
func IsProbe(r *http.Request) bool {
	path := strings.ToLower(r.URL.Path)
	query := strings.ToLower(r.URL.RawQuery)
	switch r.Method {
	case "TRACE", "TRACK", "CONNECT":
		return true
	}
	if len(r.URL.String()) > 2048 {
		return true
	}
	return lo.ContainsBy(probePatterns, func(p string) bool {
		return strings.Contains(path, p) || strings.Contains(query, p)
	})
}

// BlockProbes answers probe requests with 404 and logs them.
func (g *Guard) BlockProbes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsProbe(r) {
			g.probes.Add(1)
			g.logger.WarnContext(r.Context(), "Probe request rejected",
				log.FieldClientIP, g.ClientIP(r),
				log.FieldMethod, r.Method,
				log.FieldPath, r.URL.Path)
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Probes returns the number of rejected probe requests.
func (g *Guard) Probes() int64 {
	return g.probes.Load()
}
