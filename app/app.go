/*
 * app.go, part of mlpeg.
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

/*Package app is the presentation layer of the benchmark: it reads the
table and figure artifacts persisted by the analysis stage and serves them
as a small web dashboard. No computation happens here; this is view
composition over already-computed data.
*/
package app

import (
	"path/filepath"

	"github.com/ddmms/mlpeg/analysis"
)

//DefaultPort is the local port the dashboard uses when run standalone.
const DefaultPort = 8055

//A Benchmark is one dashboard page: its name, what it measures, where its
//documentation lives, and the artifacts it presents. The figure is wired to
//the table: the page shows it when the linked metric column is clicked.
type Benchmark struct {
	Name         string
	Description  string
	DocsURL      string
	TablePath    string
	FigurePath   string
	FigurePNG    string
	LinkedMetric string //table column that reveals the figure
}

//Pressure returns the pressure benchmark page over the artifacts in
//dataDir.
func Pressure(dataDir string) *Benchmark {
	return &Benchmark{
		Name: "Pressure",
		Description: "Performance when predicting structural properties of bulk crystals " +
			"under external pressure (0-150 GPa). Tests the ability to accurately " +
			"model compression behavior and bulk moduli.",
		DocsURL:      "https://ddmms.github.io/ml-peg/user_guide/benchmarks/bulk_crystal.html#pressure",
		TablePath:    filepath.Join(dataDir, analysis.TableArtifact),
		FigurePath:   filepath.Join(dataDir, analysis.FigureArtifact),
		FigurePNG:    filepath.Join(dataDir, analysis.FigurePNG),
		LinkedMetric: analysis.MetricCompression,
	}
}
