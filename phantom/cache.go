package phantom

import "github.com/iw2rmb/filigree/reactive"

// Cache rebuilds a MergedLine when the document revision it observes moves.
//
// The rebuild decision is driven purely by comparing the revision counter,
// never by inspecting document content. Rebuilds replace the row wholesale:
// readers see either the previous snapshot or the fully new one.
type Cache struct {
	rev   *reactive.Signal[uint64]
	build func() *MergedLine

	seen  uint64
	valid bool
	row   *MergedLine
}

// NewCache wraps build so that Row reuses its result until rev changes.
func NewCache(rev *reactive.Signal[uint64], build func() *MergedLine) *Cache {
	return &Cache{rev: rev, build: build}
}

// Row returns the cached MergedLine, rebuilding it first when the observed
// revision differs from the one the cache was built at.
func (c *Cache) Row() *MergedLine {
	rev := c.rev.Get()
	if !c.valid || rev != c.seen {
		c.row = c.build()
		c.seen = rev
		c.valid = true
	}
	return c.row
}

// Invalidate forces the next Row call to rebuild regardless of revision.
func (c *Cache) Invalidate() {
	c.valid = false
}
