// Package arp provides the concrete body behind spec §6's send_by_arp
// primitive: a small cache/aging resolver that maps an IPv4 address on a
// directly attached link to the MAC address to frame packets to. Grounded
// on the ARP cache/aging design used by the retrieved production OSPF
// daemon's arp/server package.
package arp

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Resolver resolves IPv4 addresses to MAC addresses for unicast LSU
// delivery, caching entries for defaultEntryTTL and re-requesting on miss or
// expiry. In production it would issue a real ARP request/reply exchange
// over its owning interface; entries can also be seeded directly (Learn),
// which is how Loopback-backed tests and static configuration populate it
// without a real ARP exchange.
type Resolver struct {
	cache *ttlcache.Cache[string, net.HardwareAddr]

	mu      sync.Mutex
	pending map[string][]chan net.HardwareAddr

	// request, when set, is invoked on a cache miss to perform the actual
	// ARP request; implementations call Learn once a reply arrives.
	request func(ip net.IP) error
}

const defaultEntryTTL = 10 * time.Minute

// NewResolver builds a Resolver. request may be nil for tests/static
// configuration that only ever calls Learn directly.
func NewResolver(request func(ip net.IP) error) *Resolver {
	cache := ttlcache.New[string, net.HardwareAddr](
		ttlcache.WithTTL[string, net.HardwareAddr](defaultEntryTTL),
	)
	go cache.Start()
	return &Resolver{
		cache:   cache,
		pending: make(map[string][]chan net.HardwareAddr),
		request: request,
	}
}

// Learn records (or refreshes) a resolved mapping, and wakes any callers
// currently blocked in Resolve waiting on it.
func (r *Resolver) Learn(ip net.IP, mac net.HardwareAddr) {
	key := ip.To4().String()
	r.cache.Set(key, mac, ttlcache.DefaultTTL)

	r.mu.Lock()
	waiters := r.pending[key]
	delete(r.pending, key)
	r.mu.Unlock()

	for _, w := range waiters {
		w <- mac
		close(w)
	}
}

// Resolve returns the MAC address for ip, blocking up to timeout while a
// request is outstanding if the address isn't cached.
func (r *Resolver) Resolve(ip net.IP, timeout time.Duration) (net.HardwareAddr, error) {
	key := ip.To4().String()
	if item := r.cache.Get(key); item != nil {
		return item.Value(), nil
	}

	wait := make(chan net.HardwareAddr, 1)
	r.mu.Lock()
	firstWaiter := len(r.pending[key]) == 0
	r.pending[key] = append(r.pending[key], wait)
	r.mu.Unlock()

	if firstWaiter && r.request != nil {
		if err := r.request(ip); err != nil {
			return nil, fmt.Errorf("arp: request for %s failed: %w", ip, err)
		}
	}

	select {
	case mac := <-wait:
		return mac, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("arp: resolution of %s timed out", ip)
	}
}

// Close stops the background eviction goroutine.
func (r *Resolver) Close() {
	r.cache.Stop()
}
