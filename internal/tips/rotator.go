package tips

import (
	"math/rand"
	"time"
)

// Rotator picks tips at random, never returning the same index twice in a row.
type Rotator struct {
	rnd  *rand.Rand
	tips []Tip
	last int
}

// NewRotator returns a Rotator seeded with the current time.
func NewRotator(tips []Tip) *Rotator {
	return NewSeededRotator(tips, time.Now().UnixNano())
}

// NewSeededRotator returns a deterministic Rotator.
func NewSeededRotator(tips []Tip, seed int64) *Rotator {
	return &Rotator{rnd: rand.New(rand.NewSource(seed)), tips: tips, last: -1}
}

// Next returns a random tip. The bool is false when there are no tips.
func (r *Rotator) Next() (Tip, bool) {
	switch len(r.tips) {
	case 0:
		return Tip{}, false
	case 1:
		r.last = 0
		return r.tips[0], true
	}
	if r.last < 0 {
		r.last = r.rnd.Intn(len(r.tips))
		return r.tips[r.last], true
	}
	idx := r.rnd.Intn(len(r.tips) - 1)
	if idx >= r.last {
		idx++
	}
	r.last = idx
	return r.tips[idx], true
}

// Cycle returns tips in order, wrapping around.
func (r *Rotator) Cycle() (Tip, bool) {
	if len(r.tips) == 0 {
		return Tip{}, false
	}
	r.last = (r.last + 1) % len(r.tips)
	return r.tips[r.last], true
}
