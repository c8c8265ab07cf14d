// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements text reports of soil samples and pore compartments
package out

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosoil/mdl/pore"
	"github.com/cpmech/gosoil/mdl/sample"
)

// constants
var (
	Width  = 13       // column width
	Format = "%13.4f" // format of values
	Blank  = "-"      // printed instead of NaN
)

// Column holds a labelled column of values
type Column struct {
	Label  string
	Values []float64
}

// SampleColumns returns all unit views of s that have data
func SampleColumns(s *sample.Sample) (cols []Column) {
	add := func(label string, v []float64) {
		if v != nil {
			cols = append(cols, Column{label, v})
		}
	}
	add("NO3 ppm", s.NitratePPM())
	add("NO3 kg/ha", s.NitrateKgHa())
	add("NH4 ppm", s.AmmoniaPPM())
	add("NH4 kg/ha", s.AmmoniaKgHa())
	add("SW mm/mm", s.WaterVolumetric())
	add("SW g/g", s.WaterGravimetric())
	add("SW mm", s.WaterMM())
	add("OC total%", s.CarbonTotal())
	add("OC WB%", s.CarbonWalkleyBlack())
	add("OrgN %", s.OrganicNitrogen())
	add("pH water", s.PHWater())
	add("pH CaCl2", s.PHCaCl2())
	add("EC dS/m", s.EC())
	add("CL mg/kg", s.CL())
	add("ESP %", s.ESP())
	return
}

// SampleTable returns a table with one row per layer and one column per unit view
func SampleTable(s *sample.Sample) string {
	var b strings.Builder
	cols := SampleColumns(s)
	b.WriteString(io.Sf("sample %q\n", s.Name))
	b.WriteString(cell("depth [mm]"))
	for _, c := range cols {
		b.WriteString(cell(c.Label))
	}
	b.WriteString("\n")
	for i, depth := range s.Depths() {
		b.WriteString(cell(depth))
		for _, c := range cols {
			b.WriteString(value(c.Values[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// PoreTable returns a table with one row per compartment and the totals of
// each layer. Nil layers are skipped.
func PoreTable(layers []pore.Layer) string {
	var b strings.Builder
	for _, l := range []string{"layer", "pore", "dmax [nm]", "dmin [nm]", "volume [mm]", "water [mm]", "air [mm]", "Ks [mm/h]"} {
		b.WriteString(cell(l))
	}
	b.WriteString("\n")
	for i, lay := range layers {
		if lay == nil {
			continue
		}
		for _, c := range lay {
			b.WriteString(cell(io.Sf("%d", c.Layer())))
			b.WriteString(cell(io.Sf("%d", c.Index())))
			b.WriteString(value(c.MaxDiameter()))
			b.WriteString(value(c.MinDiameter()))
			b.WriteString(value(c.VolumeDepth()))
			b.WriteString(value(c.WaterDepth()))
			b.WriteString(value(c.AirDepth()))
			b.WriteString(value(c.Ks))
			b.WriteString("\n")
		}
		b.WriteString(cell(io.Sf("%d", i)))
		b.WriteString(cell("total"))
		b.WriteString(cell(""))
		b.WriteString(cell(""))
		b.WriteString(value(lay.VolumeDepth()))
		b.WriteString(value(lay.WaterDepth()))
		b.WriteString(value(lay.AirDepth()))
		b.WriteString("\n")
	}
	return b.String()
}

func cell(s string) string {
	return io.Sf("%*s", Width, s)
}

func value(v float64) string {
	if math.IsNaN(v) {
		return cell(Blank)
	}
	return io.Sf(Format, v)
}
