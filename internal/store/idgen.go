package store

import "time"

// IDGenerator hands out time-derived ids: the current Unix time in milliseconds,
// bumped past the last issued id when the clock has not moved (or moved back).
// Ids are therefore unique and strictly increasing for the generator's lifetime.
type IDGenerator struct {
	now  func() time.Time
	last int64
}

// NewIDGenerator returns a generator reading the given clock (time.Now when nil).
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns a fresh id
func (g *IDGenerator) Next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records an id that already exists so Next never reissues it.
func (g *IDGenerator) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
