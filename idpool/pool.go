// Package idpool allocates client-side Wayland object IDs and recycles
// them through a free list once the compositor returns them via
// delete_id, per spec.md §4.3 (C3).
package idpool

import (
	"sync"

	"github.com/rs/zerolog"
)

// firstClientID is the first ID the client is allowed to allocate; 1
// is reserved for wl_display.
const firstClientID = 2

// defaultFreeListCap is the bounded free-list size from spec.md §4.3.
// The source implementation silently drops returns past this cap; this
// pool instead grows past it and logs once, per the Open Question
// resolution recorded in DESIGN.md.
const defaultFreeListCap = 1024

// Pool is a client-side object-ID allocator with free-list recycling.
// A zero Pool is not ready for use; call New.
type Pool struct {
	mu      sync.Mutex
	nextID  uint32
	free    []uint32
	present map[uint32]struct{}
	logger  zerolog.Logger
	warned  bool
}

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithLogger attaches a zerolog.Logger used for the free-list
// high-water warning. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pool) { p.logger = l }
}

// New returns a Pool ready to allocate IDs starting at 2.
func New(opts ...Option) *Pool {
	p := &Pool{
		nextID:  firstClientID,
		present: make(map[uint32]struct{}, defaultFreeListCap),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Create allocates an ID: from the free list if one is available
// (LIFO, per spec.md §4.3), otherwise the next unused ID. It never
// returns 0 or 1.
func (p *Pool) Create() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		delete(p.present, id)
		return id
	}
	id := p.nextID
	p.nextID++
	return id
}

// Destroy returns id to the free list. A duplicate Destroy of the same
// id is a silent no-op (I4, and the idempotence guarantee spec.md §4.3
// requires for duplicate delete_id notifications). Past the free
// list's high-water mark the id is still accepted — next_id already
// advanced monotonically past it, so correctness doesn't depend on
// recycling it — but a warning is logged once.
func (p *Pool) Destroy(id uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.present[id]; ok {
		return
	}
	if len(p.free) >= defaultFreeListCap && !p.warned {
		p.logger.Warn().
			Int("free_list_len", len(p.free)).
			Int("cap", defaultFreeListCap).
			Msg("idpool: free list past high-water mark, growing unbounded")
		p.warned = true
	}
	p.present[id] = struct{}{}
	p.free = append(p.free, id)
}

// Len reports the current free-list length, for tests and diagnostics.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
