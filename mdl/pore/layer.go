// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pore

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Layer holds the compartments of one soil layer, from the largest to the
// smallest pores
type Layer []*Compartment

// Check checks that all compartments belong to the same layer, share its
// thickness, have consecutive indices and non-overlapping diameter ranges,
// and that the total pore fraction does not exceed one
func (o Layer) Check() error {
	if len(o) == 0 {
		return nil
	}
	first := o[0]
	for i, c := range o {
		if c.layer != first.layer {
			return chk.Err("pore layer %d: compartment %d belongs to layer %d", first.layer, i, c.layer)
		}
		if c.index != i {
			return chk.Err("pore layer %d: compartment at position %d has index %d", first.layer, i, c.index)
		}
		if c.thick != first.thick {
			return chk.Err("pore layer %d: compartment %d has thickness %g instead of %g", first.layer, i, c.thick, first.thick)
		}
		if i > 0 && c.dmax > o[i-1].dmin {
			return chk.Err("pore layer %d: compartment %d (dmax=%g) overlaps compartment %d (dmin=%g)", first.layer, i, c.dmax, i-1, o[i-1].dmin)
		}
	}
	if p := o.Porosity(); p > 1+Tol {
		return chk.Err("pore layer %d: total pore volume fraction %g exceeds one", first.layer, p)
	}
	return nil
}

// Porosity returns the sum of the volume fractions [ml/ml]
func (o Layer) Porosity() float64 {
	return floats.Sum(o.collect((*Compartment).VolumeFraction))
}

// VolumeDepth returns the total pore volume depth [mm]
func (o Layer) VolumeDepth() float64 {
	return floats.Sum(o.collect((*Compartment).VolumeDepth))
}

// WaterDepth returns the total water depth [mm]
func (o Layer) WaterDepth() float64 {
	return floats.Sum(o.collect((*Compartment).WaterDepth))
}

// AirDepth returns the total air depth [mm]
func (o Layer) AirDepth() float64 {
	return floats.Sum(o.collect((*Compartment).AirDepth))
}

// WaterDepths returns the water depth of each compartment [mm]
func (o Layer) WaterDepths() []float64 {
	return o.collect((*Compartment).WaterDepth)
}

// WaterFilledFraction returns total water volume ÷ soil volume [ml/ml]
func (o Layer) WaterFilledFraction() float64 {
	return floats.Sum(o.collect((*Compartment).WaterFilledFraction))
}

// AddWater adds delta to the water depth of compartment idx [mm]
func (o Layer) AddWater(idx int, delta float64) error {
	if idx < 0 || idx >= len(o) {
		return chk.Err("pore layer: compartment index %d is out of range [0, %d)", idx, len(o))
	}
	return o[idx].AddWater(delta)
}

func (o Layer) collect(f func(*Compartment) float64) []float64 {
	res := make([]float64, len(o))
	for i, c := range o {
		res[i] = f(c)
	}
	return res
}
