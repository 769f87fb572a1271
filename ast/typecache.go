package ast

import "github.com/gogpu/xsc/typedenoter"

// TypeCache is embedded by every typed node (expressions and the
// declarations that introduce a typed symbol). It holds a lazily derived
// *typedenoter.Denoter and a Reset hook so the converter can invalidate it
// after rewriting a node in place, forcing the next GetTypeDenoter call to
// recompute rather than return a stale type.
type TypeCache struct {
	cached *typedenoter.Denoter
}

// TypeDenoterFunc derives a node's type the first time it is requested.
// Concrete node types pass their own derivation logic through GetTypeDenoter.
type TypeDenoterFunc func() (*typedenoter.Denoter, error)

// GetTypeDenoter returns the cached Denoter, computing and storing it via
// derive on first use.
func (c *TypeCache) GetTypeDenoter(derive TypeDenoterFunc) (*typedenoter.Denoter, error) {
	if c.cached != nil {
		return c.cached, nil
	}
	d, err := derive()
	if err != nil {
		return nil, err
	}
	c.cached = d
	return d, nil
}

// ResetTypeDenoter clears the cached Denoter, so the next GetTypeDenoter
// call derives it again. The converter's rewrites do not call it.
func (c *TypeCache) ResetTypeDenoter() {
	c.cached = nil
}
