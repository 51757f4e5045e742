package tunnel

import "github.com/vovakirdan/tui-tunnel/internal/config"

// Vec2 is a point in world space.
type Vec2 struct {
	X, Y float64
}

// Transform is the 2D pose of an entity: a translation plus a vertical
// stretch used to turn the base quad into a tall pillar stalk.
type Transform struct {
	TX, TY float64
	SY     float64
}

// Identity returns the transform that leaves base geometry in place.
func Identity() Transform {
	return Transform{SY: 1}
}

// Apply maps a base-geometry vertex into world space.
func (t Transform) Apply(v Vec2) Vec2 {
	return Vec2{X: v.X + t.TX, Y: v.Y*t.SY + t.TY}
}

// Kind tags an entity for gap comparison polarity and render asset.
type Kind int

const (
	KindPillarTop Kind = iota
	KindPillarBottom
	KindPlayer
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPillarTop:
		return "PillarTop"
	case KindPillarBottom:
		return "PillarBottom"
	case KindPlayer:
		return "Player"
	default:
		return "Unknown"
	}
}

// Pillar is one stalk of a pillar pair.
type Pillar struct {
	Kind      Kind
	Transform Transform
	GapPos    float64 // Vertical centre of the opening this pillar frames
}

// Blocks reports whether this pillar stops a player whose centre is at y
// and whose hitbox half height is half. The gap is tunnelGap tall.
func (p Pillar) Blocks(y, half, tunnelGap float64) bool {
	switch p.Kind {
	case KindPillarTop:
		return y+half > p.GapPos+tunnelGap/2
	case KindPillarBottom:
		return y-half < p.GapPos-tunnelGap/2
	default:
		return false
	}
}

// PillarPair is a top and bottom stalk that always move and recycle together.
// Pillars are only mutated through PillarPair methods, which keeps the two
// stalks at the same x and gap position.
type PillarPair struct {
	Top    Pillar
	Bottom Pillar
}

func newPillarPair() PillarPair {
	return PillarPair{
		Top:    Pillar{Kind: KindPillarTop, Transform: Identity()},
		Bottom: Pillar{Kind: KindPillarBottom, Transform: Identity()},
	}
}

// Place moves the pair to x with its opening centred on gapPos.
func (p *PillarPair) Place(x, gapPos float64, track config.TunnelTrack) {
	offset := track.TunnelGap/2 + track.StalkOffset()

	p.Top.GapPos = gapPos
	p.Top.Transform = Transform{TX: x, TY: gapPos + offset, SY: track.StalkScale}

	p.Bottom.GapPos = gapPos
	p.Bottom.Transform = Transform{TX: x, TY: gapPos - offset, SY: track.StalkScale}
}

// Shift translates both stalks horizontally.
func (p *PillarPair) Shift(dx float64) {
	p.Top.Transform.TX += dx
	p.Bottom.Transform.TX += dx
}

// X returns the horizontal centre of the pair.
func (p PillarPair) X() float64 {
	return p.Top.Transform.TX
}

// GapPos returns the vertical centre of the pair's opening.
func (p PillarPair) GapPos() float64 {
	return p.Top.GapPos
}

// Player is the controlled entity. Its x is fixed at 0.
type Player struct {
	Transform     Transform
	VerticalSpeed float64
}

// reset puts the player back at the origin at rest.
func (p *Player) reset() {
	p.Transform = Identity()
	p.VerticalSpeed = 0
}

// World is the fixed pool of entities a session owns.
// Pairs is allocated once and never grows or shrinks.
type World struct {
	Pairs  []PillarPair
	Player Player
}

// NewWorld allocates a world with the given number of pillar pairs.
func NewWorld(pairs int) World {
	w := World{Pairs: make([]PillarPair, pairs)}
	for i := range w.Pairs {
		w.Pairs[i] = newPillarPair()
	}
	w.Player.reset()
	return w
}
