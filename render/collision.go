package render

import "math"

// A PositionedEvent is one already-placed text box the collision resolver must avoid, carrying
// the priority the "smart" variant uses to decide whether lower-priority placements may be
// shoved aside.
type PositionedEvent struct {
	Box      BoundingBox
	Priority int
}

// A Resolver finds non-overlapping on-screen positions for events that are not \pos/\move
// anchored, per spec.md §4.7.1: expand each candidate box by Margin, search vertically in steps
// of box-height-plus-2*margin in the direction the alignment class implies, and pick the
// candidate minimizing |y - original.y|; if none is found within MaxSteps, fall back to the
// original position.
//
// SmartThreshold gates the priority-aware variant: 0 (the default, per the Open Question
// decision recorded in DESIGN.md) disables it, so FindPositionSmart behaves exactly like
// FindPosition and treats every placed box as an obstacle regardless of priority.
type Resolver struct {
	Margin         float64
	MaxSteps       int
	SmartThreshold int
}

// NewResolver returns a Resolver with spec.md's default 50-step search bound.
func NewResolver(margin float64) Resolver {
	return Resolver{Margin: margin, MaxSteps: 50}
}

func (r Resolver) maxSteps() int {
	if r.MaxSteps > 0 {
		return r.MaxSteps
	}
	return 50
}

// searchDirections returns the vertical step directions to try, in order, for alignment's row:
// top-row events search downward (text accumulates below them), bottom-row events search
// upward, and middle-row events try both, whichever direction lands closer to the original y.
func searchDirections(alignment int) []float64 {
	_, vy := AnchorFraction(alignment)
	switch vy {
	case 0:
		return []float64{1}
	case 1:
		return []float64{-1}
	default:
		return []float64{1, -1}
	}
}

func collidesAny(b BoundingBox, occupied []BoundingBox) bool {
	for _, o := range occupied {
		if b.Intersects(o) {
			return true
		}
	}
	return false
}

// FindPosition returns a non-colliding placement for box given the already-placed boxes in
// occupied, or box unchanged if no free slot is found within the search bound.
func (r Resolver) FindPosition(box BoundingBox, alignment int, occupied []BoundingBox) BoundingBox {
	step := box.H + 2*r.Margin
	best := box
	bestDelta := math.Inf(1)
	found := false

	for _, dir := range searchDirections(alignment) {
		for s := 0; s <= r.maxSteps(); s++ {
			candidate := BoundingBox{X: box.X, Y: box.Y + dir*step*float64(s), W: box.W, H: box.H}
			if collidesAny(candidate.Expand(r.Margin), occupied) {
				continue
			}
			delta := math.Abs(candidate.Y - box.Y)
			if delta < bestDelta {
				bestDelta = delta
				best = candidate
				found = true
			}
			break
		}
	}
	if !found {
		return box
	}
	return best
}

// FindPositionSmart behaves like FindPosition, except that when SmartThreshold > 0 and priority
// is at least SmartThreshold, placed boxes belonging to an event whose priority is below
// priority are not treated as obstacles —
// a higher-priority event is allowed to overlap lower-priority ones already on screen.
func (r Resolver) FindPositionSmart(box BoundingBox, alignment int, priority int, placed []PositionedEvent) BoundingBox {
	if r.SmartThreshold <= 0 {
		occupied := make([]BoundingBox, len(placed))
		for i, p := range placed {
			occupied[i] = p.Box
		}
		return r.FindPosition(box, alignment, occupied)
	}

	var occupied []BoundingBox
	for _, p := range placed {
		if priority >= r.SmartThreshold && p.Priority < priority {
			continue
		}
		occupied = append(occupied, p.Box)
	}
	return r.FindPosition(box, alignment, occupied)
}
