package world

import "testing"

func TestDirectionOppositeAndDelta(t *testing.T) {
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		ox, oy := dir.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v and its opposite %v do not cancel", dir, dir.Opposite())
		}
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%v opposite twice = %v", dir, dir.Opposite().Opposite())
		}
	}
	if Direction(9).IsValid() {
		t.Error("Direction(9) reported valid")
	}
	if Direction(9).Bit() != 0 {
		t.Error("invalid direction has a mask bit")
	}
	if p := Pt(3, 3).Add(Up); p != Pt(3, 2) {
		t.Errorf("Pt(3,3).Add(Up) = %v, want (3,2)", p)
	}
}
