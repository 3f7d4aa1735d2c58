package machine

import "sync/atomic"

// Owner holds one Context for the lifetime of the process and hands it out
// to a single holder at a time.
//
// Contract: the holder returned by Acquire is the only code allowed to touch
// the context until it calls Release. Acquire is not reentrant; a second
// Acquire before Release is a programming error and panics. The check is one
// atomic compare-and-swap per acquisition, not per frame.
type Owner struct {
	held atomic.Bool
	ctx  *Context
}

// NewOwner wraps c.
func NewOwner(c *Context) *Owner {
	return &Owner{ctx: c}
}

// Acquire returns the context and marks it held.
func (o *Owner) Acquire() *Context {
	if !o.held.CompareAndSwap(false, true) {
		panic("machine: context acquired while already held")
	}
	return o.ctx
}

// Release gives the context back. Releasing an unheld context panics.
func (o *Owner) Release() {
	if !o.held.CompareAndSwap(true, false) {
		panic("machine: release of a context that is not held")
	}
}

// Held reports whether the context is currently acquired.
func (o *Owner) Held() bool {
	return o.held.Load()
}

// With acquires the context, runs fn and releases it again.
func (o *Owner) With(fn func(*Context) error) error {
	c := o.Acquire()
	defer o.Release()
	return fn(c)
}
