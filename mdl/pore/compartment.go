// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pore implements water storage in pore-size classes of soil layers
//  Each layer is divided into compartments bounded by pore diameters. A
//  compartment can hold at most VolumeDepth = VolumeFraction × Thickness of water.
package pore

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Tol is the absolute tolerance on water depth bounds [mm]
const Tol = 1e-10

// Compartment holds water in one pore-size class of one layer
type Compartment struct {

	// identity
	layer int // layer index
	index int // compartment index within layer

	// geometry
	thick float64 // layer thickness [mm]
	dmax  float64 // upper pore diameter [nm]
	dmin  float64 // lower pore diameter [nm]
	vfrac float64 // pore volume ÷ soil volume [ml/ml]

	// state
	water float64 // water depth [mm]

	// Ks is the hydraulic conductivity [mm/h] set by the water movement model
	Ks float64
}

// New returns a new empty compartment
func New(layer, index int, thick, dmax, dmin, vfrac float64) (o *Compartment, err error) {
	o = new(Compartment)
	err = o.Init(layer, index, dbf.Params{
		&dbf.P{N: "thick", V: thick},
		&dbf.P{N: "dmax", V: dmax},
		&dbf.P{N: "dmin", V: dmin},
		&dbf.P{N: "vfrac", V: vfrac},
	})
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises compartment from parameters
//  thick -- layer thickness [mm]
//  dmax  -- upper pore diameter [nm]
//  dmin  -- lower pore diameter [nm]
//  vfrac -- pore volume fraction [ml/ml]
//  ks    -- hydraulic conductivity [mm/h] (optional)
//  water -- initial water depth [mm] (optional)
func (o *Compartment) Init(layer, index int, prms dbf.Params) (err error) {
	o.layer, o.index = layer, index
	o.thick, o.dmax, o.dmin, o.vfrac = 0, 0, 0, 0
	o.water, o.Ks = 0, 0
	var water float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "thick":
			o.thick = p.V
		case "dmax":
			o.dmax = p.V
		case "dmin":
			o.dmin = p.V
		case "vfrac":
			o.vfrac = p.V
		case "ks":
			o.Ks = p.V
		case "water":
			water = p.V
		default:
			return chk.Err("pore: parameter named %q is incorrect\n", p.N)
		}
	}
	if !(o.thick > 0) {
		return chk.Err("layer %d, pore compartment %d: thickness must be positive; %g given", layer, index, o.thick)
	}
	if !(o.vfrac >= 0 && o.vfrac <= 1) {
		return chk.Err("layer %d, pore compartment %d: volume fraction must be in [0, 1]; %g given", layer, index, o.vfrac)
	}
	if !(o.dmin >= 0 && o.dmax >= o.dmin) {
		return chk.Err("layer %d, pore compartment %d: diameters must satisfy 0 ≤ dmin ≤ dmax; dmin=%g and dmax=%g given", layer, index, o.dmin, o.dmax)
	}
	return o.SetWaterDepth(water)
}

// GetPrms gets (an example) of parameters
func (o Compartment) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "thick", V: 100},  // [mm]
			&dbf.P{N: "dmax", V: 30000}, // [nm]
			&dbf.P{N: "dmin", V: 3000},  // [nm]
			&dbf.P{N: "vfrac", V: 0.08}, // [ml/ml]
			&dbf.P{N: "ks", V: 12},      // [mm/h]
			&dbf.P{N: "water", V: 0},    // [mm]
		}
	}
	return dbf.Params{
		&dbf.P{N: "thick", V: o.thick},
		&dbf.P{N: "dmax", V: o.dmax},
		&dbf.P{N: "dmin", V: o.dmin},
		&dbf.P{N: "vfrac", V: o.vfrac},
		&dbf.P{N: "ks", V: o.Ks},
		&dbf.P{N: "water", V: o.water},
	}
}

// Layer returns the layer index
func (o *Compartment) Layer() int { return o.layer }

// Index returns the compartment index within the layer
func (o *Compartment) Index() int { return o.index }

// Thickness returns the layer thickness [mm]
func (o *Compartment) Thickness() float64 { return o.thick }

// MaxDiameter returns the upper pore diameter [nm]
func (o *Compartment) MaxDiameter() float64 { return o.dmax }

// MinDiameter returns the lower pore diameter [nm]
func (o *Compartment) MinDiameter() float64 { return o.dmin }

// VolumeFraction returns the pore volume fraction [ml/ml]
func (o *Compartment) VolumeFraction() float64 { return o.vfrac }

// VolumeDepth returns the water depth that fills the compartment [mm]
func (o *Compartment) VolumeDepth() float64 { return o.vfrac * o.thick }

// WaterDepth returns the water depth [mm]
func (o *Compartment) WaterDepth() float64 { return o.water }

// SetWaterDepth sets the water depth [mm]
//  Values in [-Tol, 0) are stored as 0. Values below -Tol (or NaN) give an
//  *InvalidWaterDepthError and values above VolumeDepth+Tol give an
//  *OverfillError; the state is not changed in both cases.
func (o *Compartment) SetWaterDepth(value float64) error {
	if value < -Tol || math.IsNaN(value) {
		return &InvalidWaterDepthError{o.layer, o.index, value}
	}
	if value > o.VolumeDepth()+Tol {
		return &OverfillError{o.layer, o.index, value, o.VolumeDepth()}
	}
	if value < 0 {
		value = 0
	}
	o.water = value
	return nil
}

// AddWater adds delta to the water depth [mm]; negative delta removes water
func (o *Compartment) AddWater(delta float64) error {
	return o.SetWaterDepth(o.water + delta)
}

// WaterFilledFraction returns water volume ÷ soil volume [ml/ml]
func (o *Compartment) WaterFilledFraction() float64 { return o.water / o.thick }

// AirFilledFraction returns air volume ÷ soil volume [ml/ml]
func (o *Compartment) AirFilledFraction() float64 { return o.vfrac - o.WaterFilledFraction() }

// AirDepth returns the depth of air in the compartment [mm]
func (o *Compartment) AirDepth() float64 { return o.AirFilledFraction() * o.thick }

// ConductivityIn returns the hydraulic conductivity for water entering the compartment [mm/h]
func (o *Compartment) ConductivityIn() float64 { return o.Ks }

// ConductivityOut returns the hydraulic conductivity for water leaving the compartment [mm/h]
func (o *Compartment) ConductivityOut() float64 { return o.Ks }
