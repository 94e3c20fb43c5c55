package interp

import (
	"testing"

	"github.com/ctessum/pic3d/vec3"
)

const tolerance = 1.e-12

func different(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d > tol
}

// corners returns C[i][j][k] = i + 2j + 3k, a self-consistency fixture
// for checking the interpolation kernel reproduces a known linear
// function exactly.
func corners() Corners8f {
	var c Corners8f
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				c[i][j][k] = float64(i) + 2*float64(j) + 3*float64(k)
			}
		}
	}
	return c
}

func TestScalarSelfConsistency(t *testing.T) {
	c := corners()
	if different(Scalar(c, 0.5, 0.5, 0.5), 3.0, tolerance) {
		t.Errorf("at (.5,.5,.5): want 3.0, have %v", Scalar(c, 0.5, 0.5, 0.5))
	}
	if different(Scalar(c, 0, 0, 0), c[0][0][0], tolerance) {
		t.Errorf("at (0,0,0): want %v, have %v", c[0][0][0], Scalar(c, 0, 0, 0))
	}
	if different(Scalar(c, 1, 1, 1), c[1][1][1], tolerance) {
		t.Errorf("at (1,1,1): want %v, have %v", c[1][1][1], Scalar(c, 1, 1, 1))
	}
}

func TestScalarConstantField(t *testing.T) {
	var c Corners8f
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				c[i][j][k] = 7.5
			}
		}
	}
	for _, pt := range [][3]float64{{0, 0, 0}, {1, 1, 1}, {0.3, 0.7, 0.2}} {
		v := Scalar(c, pt[0], pt[1], pt[2])
		if different(v, 7.5, tolerance) {
			t.Errorf("constant field at %v: want 7.5, have %v", pt, v)
		}
	}
}

func TestVec3MatchesScalarPerComponent(t *testing.T) {
	var c Corners8Vec
	sc := corners()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				c[i][j][k] = vec3.Vec3{X: sc[i][j][k], Y: -sc[i][j][k], Z: 2 * sc[i][j][k]}
			}
		}
	}
	v := Vec3(c, 0.25, 0.75, 0.1)
	want := Scalar(sc, 0.25, 0.75, 0.1)
	if different(v.X, want, tolerance) || different(v.Y, -want, tolerance) || different(v.Z, 2*want, tolerance) {
		t.Errorf("Vec3/Scalar mismatch: v=%v want=%v", v, want)
	}
}

func TestDepositSumsToTotal(t *testing.T) {
	var deposited [2][2][2]float64
	DepositScalar(0.3, 0.6, 0.9, 10, func(i, j, k int, contribution float64) {
		deposited[i][j][k] += contribution
	})
	var sum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				sum += deposited[i][j][k]
			}
		}
	}
	if different(sum, 10, tolerance) {
		t.Errorf("deposited weights should sum to the input value: want 10, have %v", sum)
	}
}
