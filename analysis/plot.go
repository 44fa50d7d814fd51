/*
 * plot.go, part of mlpeg.
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

package analysis

import (
	"encoding/json"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Figure is the plot artifact consumed by the generic plot renderer of the
//dashboard: named series of values plus hover metadata.
type Figure struct {
	Title     string               `json:"title"`
	XLabel    string               `json:"x_label"`
	YLabel    string               `json:"y_label"`
	Series    map[string][]float64 `json:"series"`
	HoverData map[string][]string  `json:"hoverdata"`
}

//Write persists the figure as indented JSON, overwriting filename.
func (F *Figure) Write(filename string) error {
	raw, err := json.MarshalIndent(F, "", "  ")
	if err != nil {
		return Error{message: err.Error(), deco: []string{"Figure.Write"}, critical: true}
	}
	if err := os.WriteFile(filename, raw, 0644); err != nil {
		return Error{message: err.Error(), deco: []string{"Figure.Write"}, critical: true}
	}
	return nil
}

//pressureVolumePoints walks the results tree again and returns, per model,
//the (pressure, volume) points of all its structures, for rendering.
func pressureVolumePoints(calcDir string, models []string) map[string]plotter.XYs {
	ret := make(map[string]plotter.XYs, len(models))
	for _, model := range models {
		var pts plotter.XYs
		for _, sd := range structDirs(filepath.Join(calcDir, model)) {
			recs := readResults(filepath.Join(calcDir, model, sd, "results.json"))
			pressures, volumes := PressureVolumes(recs)
			for i := range pressures {
				pts = append(pts, plotter.XY{X: pressures[i], Y: volumes[i]})
			}
		}
		ret[model] = pts
	}
	return ret
}

//RenderVolumes renders a volume-versus-pressure scatter of every model to
//the PNG file pngname, one color per model.
func RenderVolumes(calcDir string, models []string, pngname string) error {
	p := plot.New()
	p.Title.Text = "Volume vs Pressure"
	p.X.Label.Text = "Pressure / GPa"
	p.Y.Label.Text = "Predicted volume / Å³"
	p.Add(plotter.NewGrid())
	points := pressureVolumePoints(calcDir, models)
	names := make([]string, 0, len(points))
	for name := range points {
		names = append(names, name)
	}
	sort.Strings(names)
	for key, name := range names {
		if len(points[name]) == 0 {
			continue
		}
		s, err := plotter.NewScatter(points[name])
		if err != nil {
			return Error{message: err.Error(), deco: []string{"RenderVolumes"}, critical: true}
		}
		r, g, b := colors(key, len(names))
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(s)
		p.Legend.Add(name, s)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, pngname); err != nil {
		return Error{message: err.Error(), deco: []string{"RenderVolumes"}, critical: true}
	}
	return nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = p
	case 1:
		r = q
		g = v
		b = p
	case 2:
		r = p
		g = v
		b = t
	case 3:
		r = p
		g = q
		b = v
	case 4:
		r = t
		g = p
		b = v
	default: //case 5
		r = v
		g = p
		b = q
	}
	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

//colors spreads the series over the hue range, skipping the yellows, which
//are hard to see on a white background.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
