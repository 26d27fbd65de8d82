// Package asynchook dispatches bitcodec.Hooks callbacks off a bounded
// worker pool so a slow sink (a metrics exporter, a remote log shipper)
// never adds latency to Encode/Decode.
//
// usage:
//
//	logged := observability{logger: slogLogger}      // implements bitcodec.Hooks
//	hooks  := asynchook.New(logged, 1, 1000)          // 1 worker, queue of 1000
//	defer hooks.Close()
//
//	traced := bitcodec.Observed(myCodec, "user-record", hooks)
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/bitcodec"
)

// Hooks dispatches to an inner bitcodec.Hooks from a fixed pool of
// goroutines draining a bounded queue. Events that arrive when the queue
// is full are dropped rather than blocking the caller.
type Hooks struct {
	inner bitcodec.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ bitcodec.Hooks = (*Hooks)(nil)

// New starts workers goroutines draining a queue of length qlen, each
// invoking inner's methods. workers <= 0 becomes 1; qlen <= 0 becomes
// 1024.
func New(inner bitcodec.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting new events and waits for the queue to drain.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) UserFaultCaught(direction, site string, recovered any) {
	h.try(func() { h.inner.UserFaultCaught(direction, site, recovered) })
}

func (h *Hooks) FallbackExhausted(attempts int) {
	h.try(func() { h.inner.FallbackExhausted(attempts) })
}

func (h *Hooks) PadCheckFailed(gotBits int) {
	h.try(func() { h.inner.PadCheckFailed(gotBits) })
}
