package calc

import (
	"math"

	"gonum.org/v1/gonum/mat"

	mlpeg "github.com/ddmms/mlpeg"
)

//LennardJones is a plain 12-6 Lennard-Jones pair potential with periodic
//boundary conditions and a radial cutoff (truncated, not shifted). It is the
//built-in calculator of the benchmark, mostly useful for testing the
//machinery without an external MLIP program, since for a pair potential the
//benchmark metrics can be checked by hand.
type LennardJones struct {
	Epsilon float64 //eV
	Sigma   float64 //Å
	Cutoff  float64 //Å
}

//NewLennardJones returns a Lennard-Jones calculator with the parameters for
//solid argon (Epsilon 0.0103 eV, Sigma 3.4 Å) and a 3*Sigma cutoff.
func NewLennardJones() *LennardJones {
	return &LennardJones{Epsilon: 0.0103, Sigma: 3.4, Cutoff: 3 * 3.4}
}

//Clone returns a shallow copy of the calculator.
func (L *LennardJones) Clone() Calculator {
	nl := *L
	return &nl
}

//Potential evaluates energy, forces and stress for st. The stress comes
//from the pairwise virial, so it is consistent with the energy under
//homogeneous strain.
func (L *LennardJones) Potential(st *mlpeg.Structure) (*Result, error) {
	if st == nil || st.Len() == 0 {
		return nil, Error{message: "nil or empty structure given", deco: []string{"LennardJones.Potential"}, critical: true}
	}
	natoms := st.Len()
	vol := st.Volume()
	if vol <= 0 {
		return nil, Error{message: "structure has a degenerate cell", deco: []string{"LennardJones.Potential"}, critical: true}
	}
	na, nb, nc := imageRepetitions(st.Cell, vol, L.Cutoff)
	cut2 := L.Cutoff * L.Cutoff
	sig2 := L.Sigma * L.Sigma
	var energy float64
	forces := mat.NewDense(natoms, 3, nil)
	var stress [3][3]float64
	var rvec [3]float64
	for i := 0; i < natoms; i++ {
		for j := 0; j < natoms; j++ {
			for ia := -na; ia <= na; ia++ {
				for ib := -nb; ib <= nb; ib++ {
					for ic := -nc; ic <= nc; ic++ {
						if i == j && ia == 0 && ib == 0 && ic == 0 {
							continue
						}
						fa, fb, fc := float64(ia), float64(ib), float64(ic)
						var r2 float64
						for k := 0; k < 3; k++ {
							rvec[k] = st.Coords.At(i, k) - st.Coords.At(j, k) -
								fa*st.Cell.At(0, k) - fb*st.Cell.At(1, k) - fc*st.Cell.At(2, k)
							r2 += rvec[k] * rvec[k]
						}
						if r2 > cut2 {
							continue
						}
						sr6 := sig2 / r2
						sr6 = sr6 * sr6 * sr6
						sr12 := sr6 * sr6
						//each pair is visited twice, hence the halving of
						//the energy and virial terms.
						energy += 0.5 * 4 * L.Epsilon * (sr12 - sr6)
						//dphi is (dφ/dr)/r
						dphi := 24 * L.Epsilon * (sr6 - 2*sr12) / r2
						for a := 0; a < 3; a++ {
							forces.Set(i, a, forces.At(i, a)-dphi*rvec[a])
							for b := 0; b < 3; b++ {
								stress[a][b] += 0.5 * dphi * rvec[a] * rvec[b]
							}
						}
					}
				}
			}
		}
	}
	ret := &Result{Energy: energy, Forces: forces}
	ret.Stress = [6]float64{
		stress[0][0] / vol,
		stress[1][1] / vol,
		stress[2][2] / vol,
		stress[1][2] / vol,
		stress[0][2] / vol,
		stress[0][1] / vol,
	}
	return ret, nil
}

//imageRepetitions returns how many repetitions of each lattice vector are
//needed so every neighbor within the cutoff is seen. The perpendicular
//height of the cell along each axis is the volume over the area of the
//opposing face.
func imageRepetitions(cell *mat.Dense, vol, cutoff float64) (int, int, int) {
	rows := [3][3]float64{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rows[i][j] = cell.At(i, j)
		}
	}
	reps := [3]int{}
	for i := 0; i < 3; i++ {
		c := cross(rows[(i+1)%3], rows[(i+2)%3])
		area := math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
		h := vol / area
		reps[i] = int(cutoff/h) + 1
	}
	return reps[0], reps[1], reps[2]
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
