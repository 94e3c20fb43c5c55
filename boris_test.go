package pic3d

import "testing"

func TestAdvanceZeroFieldIsStraightLine(t *testing.T) {
	p := Particle{Position: Vec3{X: 1, Y: 2, Z: 3}, Velocity: Vec3{X: 0.5, Y: -0.2, Z: 0.1}, Charge: 1, Mass: 1}
	got := Advance(p, Vec3{}, Vec3{}, 2)
	want := Vec3{X: 2, Y: 1.6, Z: 3.2}
	if absDifferent(got.Position.X, want.X, 1e-12) || absDifferent(got.Position.Y, want.Y, 1e-12) || absDifferent(got.Position.Z, want.Z, 1e-12) {
		t.Errorf("position = %+v, want %+v", got.Position, want)
	}
	if got.Velocity != p.Velocity {
		t.Errorf("velocity changed under zero field: got %+v, want %+v", got.Velocity, p.Velocity)
	}
}

// SubcycleCount returns 1 (no sub-cycling) whenever B is zero.
func TestSubcycleCountZeroField(t *testing.T) {
	if n := SubcycleCount(1, 0, 1, 0.1); n != 1 {
		t.Errorf("SubcycleCount with B=0 = %d, want 1", n)
	}
}

// A larger |B| shortens the gyroperiod and so raises the substep count.
func TestSubcycleCountIncreasesWithField(t *testing.T) {
	small := SubcycleCount(1, 1, 1, 1)
	large := SubcycleCount(1, 100, 1, 1)
	if large <= small {
		t.Errorf("SubcycleCount(B=100) = %d, want > SubcycleCount(B=1) = %d", large, small)
	}
}

// AdvanceSubcycled over n=1 substep matches a direct Advance call.
func TestAdvanceSubcycledMatchesSingleStep(t *testing.T) {
	p := Particle{Position: Vec3{X: 1}, Velocity: Vec3{Z: 1}, Charge: 1, Mass: 1}
	e, b := Vec3{X: 0.2}, Vec3{X: 0.2}
	direct := Advance(p, e, b, 0.1)
	subcycled := AdvanceSubcycled(p, e, b, 0.1, 1)
	if direct != subcycled {
		t.Errorf("AdvanceSubcycled(n=1) = %+v, want %+v", subcycled, direct)
	}
}
