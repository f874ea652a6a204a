package network

import (
	"context"
	"errors"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var errMissingHost = errors.New("missing host")

const (
	defaultDialTimeout = 2 * time.Second
	defaultCacheTTL    = 10 * time.Second
)

// Dialer opens network connections.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Probe reports connectivity by dialing the group service host. Results are
// cached for a short time so a workflow does not dial twice.
type Probe struct {
	address string
	dialer  Dialer
	timeout time.Duration
	ttl     time.Duration
	now     func() time.Time

	mu        sync.Mutex
	checkedAt time.Time
	available bool
}

// NewProbe creates a probe for the host of baseURL.
func NewProbe(baseURL string) (*Probe, error) {
	address, err := hostPort(baseURL)
	if err != nil {
		return nil, err
	}
	return &Probe{
		address: address,
		dialer:  &net.Dialer{},
		timeout: defaultDialTimeout,
		ttl:     defaultCacheTTL,
		now:     time.Now,
	}, nil
}

// IsNetworkAvailable dials the service host unless a recent answer is cached.
func (p *Probe) IsNetworkAvailable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.checkedAt.IsZero() && p.now().Sub(p.checkedAt) < p.ttl {
		return p.available
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	conn, err := p.dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		logrus.WithError(err).WithField("address", p.address).Warn("⚠ Group service unreachable")
		p.available = false
	} else {
		_ = conn.Close()
		p.available = true
	}
	p.checkedAt = p.now()
	return p.available
}

// Static is a NetworkInfo with a fixed answer.
type Static bool

func (s Static) IsNetworkAvailable() bool {
	return bool(s)
}

func hostPort(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", &url.Error{Op: "parse", URL: baseURL, Err: errMissingHost}
	}
	if u.Port() != "" {
		return u.Host, nil
	}
	port := "80"
	if u.Scheme == "https" {
		port = "443"
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
