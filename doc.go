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

/*Package mlpeg is the core package of the mlpeg benchmark suite for
machine-learned interatomic potentials (MLIPs).


	**mlpeg Capabilities**

    Represents periodic crystal structures (species, cartesian positions
	and unit cell) and reads/writes them in the extended XYZ format.

    Relaxes the shape of the unit cell of a crystal under a range of
	external pressures, against any calculator implementing the
	calc.Calculator interface (a built-in Lennard-Jones calculator and a
	driver for external MLIP programs are provided).

    Aggregates the relaxation results into per-model consistency metrics
	(volume compression from 0 to 150 GPa and a finite-difference bulk
	modulus estimate) and persists table and figure artifacts.

    Serves the persisted artifacts as a small web dashboard.

The root package contains only the structure representation, the extended
XYZ reader/writer, unit conversions and the error conventions shared by the
subpackages. The benchmark stages themselves live in the calc, analysis and
app subpackages, and are driven by the command in cmd/mlpeg.
*/
package mlpeg
