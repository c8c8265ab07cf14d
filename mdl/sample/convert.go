// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// layers holds the per-layer data used by conversions
type layers struct {
	thick []float64 // thickness [mm]
	bd    []float64 // bulk density [g/cm³]; nil if unknown
}

// conversion converts a copy of the raw values in place
type conversion struct {
	needsBd bool                       // cannot be computed without bulk density
	apply   func(v []float64, l layers) // nil means identity
}

// pair is the key of conversion tables: (current unit, requested unit)
type pair[U comparable] struct {
	from, to U
}

// nitrogenTable holds nitrate and ammonia conversions.
// Mineral nitrogen is only reported when bulk density is known, even in the
// stored unit.
var nitrogenTable = map[pair[NitrogenUnit]]conversion{
	{PPM, PPM}:         {needsBd: true},
	{KgPerHa, KgPerHa}: {needsBd: true},
	{PPM, KgPerHa}: {true, func(v []float64, l layers) {
		floats.Scale(0.01, v)
		floats.Mul(v, l.bd)
		floats.Mul(v, l.thick)
	}},
	{KgPerHa, PPM}: {true, func(v []float64, l layers) {
		floats.Scale(100, v)
		floats.Div(v, l.bd)
		floats.Div(v, l.thick)
	}},
}

// waterTable holds soil water conversions. Every entry starts from the
// stored unit; there is no canonical intermediate unit.
var waterTable = map[pair[WaterUnit]]conversion{

	// to mm
	{MM, MM}: {},
	{Volumetric, MM}: {false, func(v []float64, l layers) {
		floats.Mul(v, l.thick)
	}},
	{Gravimetric, MM}: {true, func(v []float64, l layers) {
		floats.Mul(v, l.bd)
		floats.Mul(v, l.thick)
	}},

	// to gravimetric
	{Gravimetric, Gravimetric}: {},
	{Volumetric, Gravimetric}: {true, func(v []float64, l layers) {
		floats.Div(v, l.bd)
	}},
	{MM, Gravimetric}: {true, func(v []float64, l layers) {
		floats.Div(v, l.bd)
		floats.Div(v, l.thick)
	}},

	// to volumetric
	{Volumetric, Volumetric}: {},
	{Gravimetric, Volumetric}: {true, func(v []float64, l layers) {
		floats.Mul(v, l.bd)
	}},
	{MM, Volumetric}: {false, func(v []float64, l layers) {
		floats.Div(v, l.thick)
	}},
}

// carbonTable holds organic carbon conversions
var carbonTable = map[pair[CarbonUnit]]conversion{
	{TotalPercent, TotalPercent}:               {},
	{WalkleyBlackPercent, WalkleyBlackPercent}: {},
	{WalkleyBlackPercent, TotalPercent}: {false, func(v []float64, l layers) {
		floats.Scale(WalkleyBlackFactor, v)
	}},
	{TotalPercent, WalkleyBlackPercent}: {false, func(v []float64, l layers) {
		floats.Scale(1.0/WalkleyBlackFactor, v)
	}},
}

// phTable holds pH conversions
var phTable = map[pair[PHUnit]]conversion{
	{Water, Water}: {},
	{CaCl2, CaCl2}: {},
	{CaCl2, Water}: {false, func(v []float64, l layers) {
		floats.Scale(PhSlope, v)
		floats.AddConst(-PhOffset, v)
	}},
	{Water, CaCl2}: {false, func(v []float64, l layers) {
		floats.AddConst(PhOffset, v)
		floats.Scale(1.0/PhSlope, v)
	}},
}

// convert returns a converted copy of raw. A nil result without error means
// "no data": raw is absent or the conversion needs bulk density and none is
// available. NaN entries stay NaN.
func convert[U comparable](table map[pair[U]]conversion, raw []float64, from, to U, l layers) ([]float64, error) {
	c, ok := table[pair[U]{from, to}]
	if !ok {
		return nil, chk.Err("cannot convert from %v to %v", from, to)
	}
	if raw == nil {
		return nil, nil
	}
	if c.needsBd && l.bd == nil {
		return nil, nil
	}
	v := make([]float64, len(raw))
	copy(v, raw)
	if c.apply != nil {
		c.apply(v, l)
	}
	return v, nil
}
