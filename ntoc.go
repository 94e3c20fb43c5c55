package pic3d

import "github.com/ctessum/pic3d/vec3"

// NodeToCenter interpolates B from the node grid to the center grid:
// each center is the unweighted average of the eight nodes at its
// corners, i.e. the trilinear weight at the geometric centroid,
// u=v=w=½. This is the "N→C" interpolator.
func NodeToCenter(fields *FieldGrid, centers *CenterGrid) {
	for c := 0; c < centers.Props.Nx; c++ {
		for d := 0; d < centers.Props.Ny; d++ {
			for e := 0; e < centers.Props.Nz; e++ {
				var sum vec3.Vec3
				for i := 0; i < 2; i++ {
					for j := 0; j < 2; j++ {
						for k := 0; k < 2; k++ {
							sum = vec3.Add(sum, fields.At(c+i, d+j, e+k).B)
						}
					}
				}
				*centers.At(c, d, e) = vec3.Scale(sum, 1.0/8.0)
			}
		}
	}
}

// CenterToNode interpolates B from the center grid to the node grid:
// each node is the unweighted average of the eight centers surrounding
// it, wrapping across the periodic boundary where a node's low-index
// neighbour center would otherwise fall outside [0,Nx). This is the
// "C→N" interpolator and the final step of the forward field solver.
func CenterToNode(centers *CenterGrid, fields *FieldGrid) {
	props := fields.Props
	for p := 0; p <= props.Nx; p++ {
		for q := 0; q <= props.Ny; q++ {
			for r := 0; r <= props.Nz; r++ {
				var sum vec3.Vec3
				for i := 0; i < 2; i++ {
					ci := WrapIndex(p-i, props.Nx)
					for j := 0; j < 2; j++ {
						cj := WrapIndex(q-j, props.Ny)
						for k := 0; k < 2; k++ {
							ck := WrapIndex(r-k, props.Nz)
							sum = vec3.Add(sum, *centers.At(ci, cj, ck))
						}
					}
				}
				fields.At(p, q, r).B = vec3.Scale(sum, 1.0/8.0)
			}
		}
	}
}
