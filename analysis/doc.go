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

/*Package analysis aggregates the results of the calculation stage into the
per-model metrics and the artifacts of the pressure benchmark.

Two metrics are computed per model, from the pressure-volume series of each
structure: the mean absolute relative volume change from the first to the
last available pressure (the "Volume Compression"), and a mean
finite-difference bulk modulus estimate. Both are self-consistency proxies:
no ground truth is consulted, since the data source carries none at
present, so the metrics report the magnitude of the model's own prediction
rather than a deviation from a reference. Do not "fix" this by substituting
a true error metric.

The aggregation is tolerant by construction: models or structures with no
results on disk contribute zero-valued metrics, error records are skipped
pressure by pressure, and nothing here ever fails because data is missing.
*/
package analysis
