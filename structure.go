/*
 * structure.go, part of mlpeg.
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

package mlpeg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//GPaToEVA3 converts pressures from GPa to eV/Å³ (1 GPa = 0.00624150913 eV/Å³).
//The same factor is used for every pressure in the benchmark.
const GPaToEVA3 = 0.00624150913

//Pressures is the fixed series of target external pressures, in GPa, at which
//every structure is relaxed. The order here is the order of the keys in the
//results files.
var Pressures = []float64{0, 10, 30, 50, 100, 150}

//PressureKey returns the key under which the relaxation record for the
//pressure p (in GPa) is stored in a results file.
func PressureKey(p float64) string {
	return fmt.Sprintf("pressure_%ggpa", p)
}

//Structure represents a periodic crystal structure: the chemical symbol of
//each atom, its cartesian coordinates (in Å, one row per atom) and the unit
//cell (3x3, one lattice vector per row, in Å). Structures read from a file
//are treated as immutable sources: they are copied before each relaxation.
type Structure struct {
	Name    string
	Symbols []string
	Coords  *mat.Dense //N x 3
	Cell    *mat.Dense //3 x 3, rows are the lattice vectors
}

//NewStructure builds a Structure from its parts. It returns an error if
//the coordinates don't have 3 columns or their number of rows doesn't match
//the number of symbols, or if the cell is not 3x3.
func NewStructure(name string, symbols []string, coords, cell *mat.Dense) (*Structure, error) {
	if coords == nil || cell == nil {
		return nil, Error{message: "nil coordinates or cell", deco: []string{"NewStructure"}, critical: true}
	}
	r, c := coords.Dims()
	if c != 3 || r != len(symbols) {
		return nil, Error{message: fmt.Sprintf("coordinates are %dx%d for %d atoms", r, c, len(symbols)), deco: []string{"NewStructure"}, critical: true}
	}
	if r, c = cell.Dims(); r != 3 || c != 3 {
		return nil, Error{message: "cell must be 3x3", deco: []string{"NewStructure"}, critical: true}
	}
	return &Structure{Name: name, Symbols: symbols, Coords: coords, Cell: cell}, nil
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	if S == nil || S.Coords == nil {
		return 0
	}
	r, _ := S.Coords.Dims()
	return r
}

//Copy returns a deep copy of the structure. It panics on a nil receiver,
//as that means the program is wrong and should crash.
func (S *Structure) Copy() *Structure {
	if S == nil {
		panic(PanicMsg("mlpeg: attempted to copy a nil Structure"))
	}
	ns := new(Structure)
	ns.Name = S.Name
	ns.Symbols = make([]string, len(S.Symbols))
	copy(ns.Symbols, S.Symbols)
	ns.Coords = mat.DenseCopyOf(S.Coords)
	ns.Cell = mat.DenseCopyOf(S.Cell)
	return ns
}

//Volume returns the volume of the unit cell in Å³, i.e. the absolute value
//of the determinant of the cell matrix.
func (S *Structure) Volume() float64 {
	v := mat.Det(S.Cell)
	if v < 0 {
		return -v
	}
	return v
}

//Deform returns a copy of the structure with the deformation matrix m
//(usually I+strain) applied to the cell, scaling the atoms with it, so
//their fractional coordinates are preserved. The receiver is not modified.
func (S *Structure) Deform(m *mat.Dense) *Structure {
	ns := S.Copy()
	ns.Cell.Mul(S.Cell, m)
	ns.Coords.Mul(S.Coords, m)
	return ns
}

//CellSlice returns the cell as a 3x3 nested slice, for serialization.
func (S *Structure) CellSlice() [][]float64 {
	return denseToSlice(S.Cell)
}

//CoordsSlice returns the coordinates as an Nx3 nested slice, for serialization.
func (S *Structure) CoordsSlice() [][]float64 {
	return denseToSlice(S.Coords)
}

func denseToSlice(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	ret := make([][]float64, r)
	for i := 0; i < r; i++ {
		ret[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			ret[i][j] = m.At(i, j)
		}
	}
	return ret
}
