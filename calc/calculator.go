/*
 * calculator.go, part of mlpeg.
 *
 * Copyright 2024 The mlpeg developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package calc

import (
	"gonum.org/v1/gonum/mat"

	mlpeg "github.com/ddmms/mlpeg"
)

//Result holds everything a calculator evaluates for a structure: the
//potential energy in eV, the forces on each atom in eV/Å (one row per atom)
//and the stress tensor in eV/Å³, in Voigt order (xx, yy, zz, yz, xz, xy).
type Result struct {
	Energy float64
	Forces *mat.Dense
	Stress [6]float64
}

//ForcesSlice returns the forces as an Nx3 nested slice, for serialization.
func (R *Result) ForcesSlice() [][]float64 {
	r, _ := R.Forces.Dims()
	ret := make([][]float64, r)
	for i := 0; i < r; i++ {
		ret[i] = []float64{R.Forces.At(i, 0), R.Forces.At(i, 1), R.Forces.At(i, 2)}
	}
	return ret
}

//This allows plugging different potentials into the benchmark.
type Calculator interface {

	//Potential evaluates the energy, forces and stress of the structure st.
	//It must not modify st.
	Potential(st *mlpeg.Structure) (*Result, error)

	//Clone returns a shallow copy of the calculator, so each relaxation can
	//get its own instance and no state leaks between independent
	//optimizations.
	Clone() Calculator
}
