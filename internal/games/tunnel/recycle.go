package tunnel

import (
	"math/rand"

	"github.com/vovakirdan/tui-tunnel/internal/config"
)

// Ring recycles a fixed set of pillar pairs so the track looks endless.
// A pair that scrolls past the left edge goes to the back of the queue with
// a fresh random gap; nothing is ever allocated or freed.
type Ring struct {
	track config.TunnelTrack
	rng   *rand.Rand
	tail  *PillarPair // rightmost pair, the back of the queue
}

// NewRing creates a ring for the given track with a seeded RNG.
func NewRing(track config.TunnelTrack, seed int64) *Ring {
	return &Ring{
		track: track,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// RandomGap draws a gap position uniformly from the range that keeps the
// whole opening, plus the configured margin, on screen.
func (r *Ring) RandomGap() float64 {
	return (r.rng.Float64() - 0.5) * r.track.GapRange()
}

// Line lays the pairs out to the right of the field so they scroll in one
// after another. The first pair's gap is centred; the rest are random.
func (r *Ring) Line(pairs []PillarPair) {
	for i := range pairs {
		gap := 0.0
		if i > 0 {
			gap = r.RandomGap()
		}
		pairs[i].Place(float64(i+1)*r.track.Spacing, gap, r.track)
	}
	r.tail = nil
	if len(pairs) > 0 {
		r.tail = &pairs[len(pairs)-1]
	}
}

// MaybeRecycle moves pair to the back of the queue if it has left the
// field: SpawnX, or one spacing behind the current tail when the tail is
// already further right. It reports whether the pair was recycled.
func (r *Ring) MaybeRecycle(pair *PillarPair) bool {
	if pair.X() >= r.track.LeftBound() {
		return false
	}
	pair.Place(r.spawnX(pair), r.RandomGap(), r.track)
	r.tail = pair
	return true
}

func (r *Ring) spawnX(pair *PillarPair) float64 {
	x := r.track.SpawnX
	if r.tail != nil && r.tail != pair {
		x = max(x, r.tail.X()+r.track.Spacing)
	}
	return x
}
