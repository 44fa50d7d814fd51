/*
 * doc.go, part of mlpeg.
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

/*Package calc runs the calculation stage of the pressure benchmark: the
cell-shape relaxation of every input structure, against every model, at every
target pressure of the fixed series.

The package defines the Calculator interface, through which any machine
learned interatomic potential (or classical potential) can be plugged into
the benchmark. A built-in Lennard-Jones calculator is provided, plus a
driver that obtains energies, forces and stresses from an external MLIP
program (similar in spirit to how QM programs are usually driven from
scripts: write an input file, run the program, parse its output).

The relaxation itself minimizes the enthalpy E + P·V over the six
components of the cell strain, with the atoms scaled along (their
fractional coordinates are kept), using the BFGS quasi-Newton minimizer
from gonum. Each relaxation always starts from the original, unrelaxed
structure, never from the result at the previous pressure.
*/
package calc
