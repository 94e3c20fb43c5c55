// Package interp implements the trilinear weight kernel shared by the
// particle-to-grid projector and the grid-to-particle interpolator. The
// node/center averaging in ntoc.go does not use it.
package interp

import "github.com/ctessum/pic3d/vec3"

// Weight returns the trilinear weight of corner c (0 or 1) at fractional
// offset t in [0,1]: w_0(t) = 1-t, w_1(t) = t.
func Weight(t float64, c int) float64 {
	if c == 0 {
		return 1 - t
	}
	return t
}

// Corners8Vec is an octet of vector corner values addressed [i][j][k]
// with i,j,k in {0,1}.
type Corners8Vec = [2][2][2]vec3.Vec3

// Corners8f is an octet of scalar corner values addressed [i][j][k] with
// i,j,k in {0,1}.
type Corners8f = [2][2][2]float64

// Vec3 computes Σ w_i(u)·w_j(v)·w_k(w)·C[i][j][k] over an octet of
// vector corner values.
func Vec3(c Corners8Vec, u, v, w float64) vec3.Vec3 {
	var out vec3.Vec3
	for i := 0; i < 2; i++ {
		wi := Weight(u, i)
		for j := 0; j < 2; j++ {
			wij := wi * Weight(v, j)
			for k := 0; k < 2; k++ {
				wijk := wij * Weight(w, k)
				out.AddTo(c[i][j][k], wijk)
			}
		}
	}
	return out
}

// Scalar computes Σ w_i(u)·w_j(v)·w_k(w)·C[i][j][k] over an octet of
// scalar corner values.
func Scalar(c Corners8f, u, v, w float64) float64 {
	var out float64
	for i := 0; i < 2; i++ {
		wi := Weight(u, i)
		for j := 0; j < 2; j++ {
			wij := wi * Weight(v, j)
			for k := 0; k < 2; k++ {
				out += wij * Weight(w, k) * c[i][j][k]
			}
		}
	}
	return out
}

// Deposit adds value*weight(u,v,w,i,j,k) to each of the eight corners
// reached via add(i,j,k, contribution), used by the particle-to-grid
// projector to scatter one particle's contribution without allocating an
// intermediate octet.
func Deposit(u, v, w float64, value vec3.Vec3, add func(i, j, k int, contribution vec3.Vec3)) {
	for i := 0; i < 2; i++ {
		wi := Weight(u, i)
		for j := 0; j < 2; j++ {
			wij := wi * Weight(v, j)
			for k := 0; k < 2; k++ {
				wijk := wij * Weight(w, k)
				if wijk != 0 {
					add(i, j, k, vec3.Scale(value, wijk))
				}
			}
		}
	}
}

// DepositScalar is the scalar analogue of Deposit, used to scatter
// charge (rather than current) onto the eight surrounding nodes.
func DepositScalar(u, v, w float64, value float64, add func(i, j, k int, contribution float64)) {
	for i := 0; i < 2; i++ {
		wi := Weight(u, i)
		for j := 0; j < 2; j++ {
			wij := wi * Weight(v, j)
			for k := 0; k < 2; k++ {
				wijk := wij * Weight(w, k)
				if wijk != 0 {
					add(i, j, k, value*wijk)
				}
			}
		}
	}
}
