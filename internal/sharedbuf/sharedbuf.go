// Package sharedbuf provides a reference-counted byte buffer with
// runtime-checked exclusive mutation. It is the shared-handle side of the
// clone comparisons: cloning a handle bumps a counter instead of copying
// the buffer.
package sharedbuf

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrBorrowed is returned when exclusive access is requested while
// another mutable borrow is outstanding. This is a programming defect in
// the caller, not a condition to recover from.
var ErrBorrowed = errors.New("sharedbuf: buffer already borrowed for mutation")

// Handle is a reference-counted alias to one underlying buffer. Any
// number of handles may alias the same buffer; Clone is O(1) and never
// touches the buffer's bytes.
type Handle struct {
	s *shared
}

type shared struct {
	mu   sync.Mutex // TryLock gates exclusive mutation, fail fast
	refs atomic.Int64
	data []byte
}

// New wraps data in a fresh Handle with a reference count of one. The
// caller must not retain its own reference to data.
func New(data []byte) *Handle {
	s := &shared{data: data}
	s.refs.Store(1)
	return &Handle{s: s}
}

// Clone returns a new Handle aliasing the same buffer.
func (h *Handle) Clone() *Handle {
	h.s.refs.Add(1)
	return &Handle{s: h.s}
}

// Release drops this Handle's reference and returns the remaining count.
func (h *Handle) Release() int64 {
	return h.s.refs.Add(-1)
}

// Refs returns the current reference count.
func (h *Handle) Refs() int64 {
	return h.s.refs.Load()
}

// Len returns the buffer length in bytes.
func (h *Handle) Len() int {
	return len(h.s.data)
}

// Snapshot copies the buffer out as a string.
func (h *Handle) Snapshot() string {
	return string(h.s.data)
}

// BorrowMut acquires exclusive mutable access to the underlying buffer.
// If another borrow is outstanding it fails immediately with ErrBorrowed
// rather than blocking.
func (h *Handle) BorrowMut() (*Mut, error) {
	if !h.s.mu.TryLock() {
		return nil, ErrBorrowed
	}
	return &Mut{s: h.s}, nil
}

// Mut is an exclusive mutable borrow of a Handle's buffer. At most one
// Mut exists per buffer at any time; it must be Released before another
// borrow can succeed.
type Mut struct {
	s        *shared
	released bool
}

// Append appends p to the shared buffer in place. Amortized O(1); O(n)
// only when the append grows past the buffer's capacity.
func (m *Mut) Append(p []byte) {
	m.s.data = append(m.s.data, p...)
}

// Bytes returns the borrowed buffer. Only valid until Release.
func (m *Mut) Bytes() []byte {
	return m.s.data
}

// Snapshot copies the borrowed buffer out as a string.
func (m *Mut) Snapshot() string {
	return string(m.s.data)
}

// Release ends the borrow. Releasing twice is a no-op.
func (m *Mut) Release() {
	if m.released {
		return
	}
	m.released = true
	m.s.mu.Unlock()
}
