package render

import "testing"

func TestFindPositionReturnsOriginalWhenNoCollision(t *testing.T) {
	r := NewResolver(2)
	box := BoundingBox{X: 0, Y: 100, W: 50, H: 20}
	got := r.FindPosition(box, 2, nil)
	if got != box {
		t.Fatalf("got %+v, want unchanged %+v", got, box)
	}
}

func TestFindPositionShiftsAwayFromCollisionBottomAlignment(t *testing.T) {
	r := NewResolver(2)
	box := BoundingBox{X: 0, Y: 100, W: 50, H: 20}
	occupied := []BoundingBox{box}
	got := r.FindPosition(box, 2, occupied) // alignment 2: bottom row, search up
	if got.Y >= box.Y {
		t.Fatalf("expected resolved box to move upward away from the occupied original, got %+v", got)
	}
	if collidesAny(got.Expand(r.Margin), occupied) {
		t.Fatalf("resolved box %+v still collides with occupied", got)
	}
}

func TestFindPositionTopAlignmentSearchesDownward(t *testing.T) {
	r := NewResolver(2)
	box := BoundingBox{X: 0, Y: 0, W: 50, H: 20}
	occupied := []BoundingBox{box}
	got := r.FindPosition(box, 8, occupied) // alignment 8: top row, search down
	if got.Y <= box.Y {
		t.Fatalf("expected resolved box to move downward, got %+v", got)
	}
}

func TestFindPositionFallsBackWhenExhausted(t *testing.T) {
	r := Resolver{Margin: 2, MaxSteps: 1}
	box := BoundingBox{X: 0, Y: 0, W: 50, H: 20}
	// Alignment 2 (bottom row) searches upward only; wall off both the original slot (s=0)
	// and the single step the s<=1 bound allows (s=1, one box-height-plus-margin step up).
	occupied := []BoundingBox{
		{X: 0, Y: 0, W: 50, H: 20},
		{X: 0, Y: -24, W: 50, H: 20},
	}
	got := r.FindPosition(box, 2, occupied)
	if got != box {
		t.Fatalf("expected fallback to original box, got %+v", got)
	}
}

func TestFindPositionSmartDisabledBehavesLikePlain(t *testing.T) {
	r := NewResolver(2)
	box := BoundingBox{X: 0, Y: 100, W: 50, H: 20}
	placed := []PositionedEvent{{Box: box, Priority: 100}}
	got := r.FindPositionSmart(box, 2, 0, placed)
	want := r.FindPosition(box, 2, []BoundingBox{box})
	if got != want {
		t.Fatalf("got %+v, want %+v (SmartThreshold disabled should match FindPosition)", got, want)
	}
}

func TestFindPositionSmartIgnoresLowerPriorityObstacles(t *testing.T) {
	r := Resolver{Margin: 2, MaxSteps: 50, SmartThreshold: 10}
	box := BoundingBox{X: 0, Y: 100, W: 50, H: 20}
	placed := []PositionedEvent{{Box: box, Priority: 1}}
	got := r.FindPositionSmart(box, 2, 20, placed)
	if got != box {
		t.Fatalf("expected a high-priority event to ignore a lower-priority obstacle, got %+v", got)
	}
}
