/*
 * relax.go, part of mlpeg.
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
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	mlpeg "github.com/ddmms/mlpeg"
)

//RelaxOptions controls a single cell-shape relaxation.
type RelaxOptions struct {
	Fmax  float64     //convergence criterion on the largest generalized force component, eV/Å. 0 means the default 0.05.
	Steps int         //cap on BFGS iterations. 0 means the default 500.
	Traj  *TrajWriter //optional, receives one frame per BFGS iteration.
}

const (
	defaultFmax  = 0.05
	defaultSteps = 500
)

//Relax performs a cell-shape relaxation of st against the calculator c,
//under the external pressure pressureGPa (in GPa). Only the six components
//of the cell strain are optimized; the atoms follow the cell affinely, so
//their fractional coordinates never change. The objective is the enthalpy
//E + P·V, minimized with BFGS until the largest component of the
//generalized force on the strain drops below Fmax, or Steps iterations
//have been spent, whichever comes first. st itself is never modified; the
//relaxed structure is returned along with the calculator results for it.
func Relax(st *mlpeg.Structure, c Calculator, pressureGPa float64, opts *RelaxOptions) (*mlpeg.Structure, *Result, error) {
	if opts == nil {
		opts = &RelaxOptions{}
	}
	fmax := opts.Fmax
	if fmax <= 0 {
		fmax = defaultFmax
	}
	steps := opts.Steps
	if steps <= 0 {
		steps = defaultSteps
	}
	p := pressureGPa * mlpeg.GPaToEVA3
	ev := &strainEval{st: st, calc: c, pressure: p}
	if opts.Traj != nil {
		if err := opts.Traj.WNext(st); err != nil {
			return nil, nil, errDecorate(err, "Relax")
		}
	}
	problem := optimize.Problem{
		Func: ev.enthalpy,
		Grad: ev.gradient,
	}
	//gradientOnly keeps the optimizer from stopping on stalled enthalpy
	//values (gonum's default when Converger is nil): the only ways out are
	//the force criterion and the iteration cap.
	settings := &optimize.Settings{
		GradientThreshold: fmax,
		MajorIterations:   steps,
		Converger:         gradientOnly{},
	}
	if opts.Traj != nil {
		settings.Recorder = &trajRecorder{w: opts.Traj, base: st}
	}
	res, err := optimize.Minimize(problem, make([]float64, 6), settings, &optimize.BFGS{})
	if ev.err != nil {
		return nil, nil, errDecorate(ev.err, "Relax")
	}
	if err != nil {
		return nil, nil, Error{message: "optimization failed: " + err.Error(), deco: []string{"Relax"}, critical: true}
	}
	final := st.Deform(deformation(res.X))
	final.Name = st.Name
	out, err := c.Potential(final)
	if err != nil {
		return nil, nil, errDecorate(err, "Relax")
	}
	return final, out, nil
}

//strainEval evaluates the enthalpy and its strain gradient, caching the last
//calculator invocation since gonum asks for the function and the gradient at
//the same point separately. The first calculator error is kept and aborts
//the optimization through non-finite values.
type strainEval struct {
	st       *mlpeg.Structure
	calc     Calculator
	pressure float64 //eV/Å³

	lastX   []float64
	lastRes *Result
	lastVol float64
	err     error
}

func (E *strainEval) eval(x []float64) *Result {
	if E.err != nil {
		return nil
	}
	if E.lastX != nil && sameStrain(E.lastX, x) {
		return E.lastRes
	}
	def := E.st.Deform(deformation(x))
	res, err := E.calc.Potential(def)
	if err != nil {
		E.err = err
		return nil
	}
	E.lastX = append(E.lastX[:0], x...)
	E.lastRes = res
	E.lastVol = def.Volume()
	return res
}

func (E *strainEval) enthalpy(x []float64) float64 {
	res := E.eval(x)
	if res == nil {
		return math.Inf(1)
	}
	return res.Energy + E.pressure*E.lastVol
}

//gradient computes dH/dx as V·F^-T·(σ+P·I), mapped back to the Voigt
//components of the strain. At zero strain this is the usual generalized
//force V·(σ+P·I) on a strain filter.
func (E *strainEval) gradient(grad, x []float64) {
	res := E.eval(x)
	if res == nil {
		for i := range grad {
			grad[i] = math.NaN()
		}
		return
	}
	s := res.Stress
	sp := mat.NewDense(3, 3, []float64{
		s[0] + E.pressure, s[5], s[4],
		s[5], s[1] + E.pressure, s[3],
		s[4], s[3], s[2] + E.pressure,
	})
	var finv, g mat.Dense
	if err := finv.Inverse(deformation(x)); err != nil {
		E.err = Error{message: "deformation matrix is singular", deco: []string{"Relax"}, critical: true}
		for i := range grad {
			grad[i] = math.NaN()
		}
		return
	}
	g.Mul(finv.T(), sp)
	g.Scale(E.lastVol, &g)
	grad[0] = g.At(0, 0)
	grad[1] = g.At(1, 1)
	grad[2] = g.At(2, 2)
	grad[3] = (g.At(1, 2) + g.At(2, 1)) / 2
	grad[4] = (g.At(0, 2) + g.At(2, 0)) / 2
	grad[5] = (g.At(0, 1) + g.At(1, 0)) / 2
}

//deformation builds I+ε from the Voigt strain components
//(xx, yy, zz, yz, xz, xy), with the shears split between the two
//off-diagonal entries.
func deformation(x []float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1 + x[0], x[5] / 2, x[4] / 2,
		x[5] / 2, 1 + x[1], x[3] / 2,
		x[4] / 2, x[3] / 2, 1 + x[2],
	})
}

func sameStrain(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//gradientOnly is a Converger that never converges, leaving termination to
//the gradient threshold and the iteration cap alone.
type gradientOnly struct{}

func (gradientOnly) Init(dim int) {}

func (gradientOnly) Converged(loc *optimize.Location) optimize.Status {
	return optimize.NotTerminated
}

//trajRecorder writes a trajectory frame at the end of each BFGS iteration.
type trajRecorder struct {
	w    *TrajWriter
	base *mlpeg.Structure
}

func (T *trajRecorder) Init() error { return nil }

func (T *trajRecorder) Record(loc *optimize.Location, op optimize.Operation, _ *optimize.Stats) error {
	if op&optimize.MajorIteration == 0 {
		return nil
	}
	return T.w.WNext(T.base.Deform(deformation(loc.X)))
}
