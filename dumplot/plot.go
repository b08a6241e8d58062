/*
 * plot.go, part of golammps.
 *
 * Copyright 2022 Zafer Kosar <zkosar{at}itudotedudottr>
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

//Package dumplot draws small operational plots from decoded
//trajectories, for the humans watching a conversion, not for any
//downstream parser.
package dumplot

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/zkosar/golammps/dump"
)

//TypeCounts produces a png bar chart of the per-type atom counts in a
//decode summary. The extension is appended to plotname. Returns an
//error or nil.
func TypeCounts(S *dump.Summary, title, plotname string) error {
	if S == nil {
		panic("Given nil summary")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Atom type"
	p.Y.Label.Text = "Atoms"
	vals := make(plotter.Values, len(S.TypeCounts))
	names := make([]string, len(S.TypeCounts))
	for i, tc := range S.TypeCounts {
		vals[i] = float64(tc.Count)
		names[i] = strconv.Itoa(tc.Type)
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(25))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 65, G: 105, B: 225, A: 255}
	p.Add(bars)
	p.NominalX(names...)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
