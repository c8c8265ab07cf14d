// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Profile holds the physical properties of the layers of a soil profile.
// It implements sample.Lookup.
type Profile struct {
	Thick []float64 // thickness of each layer [mm]
	Bd    []float64 // bulk density [g/cm³]; nil if unknown
	Cnr   []float64 // carbon-nitrogen ratio; nil if unknown
}

// NewProfile returns a profile after checking that all arrays are aligned
func NewProfile(thick, bd, cnr []float64) (o *Profile, err error) {
	if len(thick) == 0 {
		return nil, chk.Err("profile must have at least one layer")
	}
	for i, h := range thick {
		if !(h > 0) {
			return nil, chk.Err("profile: thickness of layer %d must be positive; %g given", i, h)
		}
	}
	if bd != nil && len(bd) != len(thick) {
		return nil, chk.Err("profile: %d bulk densities given for %d layers", len(bd), len(thick))
	}
	if cnr != nil && len(cnr) != len(thick) {
		return nil, chk.Err("profile: %d C:N ratios given for %d layers", len(cnr), len(thick))
	}
	return &Profile{Thick: thick, Bd: bd, Cnr: cnr}, nil
}

// Depth returns the depth of the bottom of the profile [mm]
func (o *Profile) Depth() (z float64) {
	for _, h := range o.Thick {
		z += h
	}
	return
}

// BulkDensity returns bulk density mapped onto the given layers
func (o *Profile) BulkDensity(thickness []float64) []float64 {
	return o.mapTo(o.Bd, thickness, "bulk density")
}

// CarbonNitrogenRatio returns C:N ratio mapped onto the given layers
func (o *Profile) CarbonNitrogenRatio(thickness []float64) []float64 {
	return o.mapTo(o.Cnr, thickness, "C:N ratio")
}

// mapTo maps values given per profile layer onto other layers by averaging
// weighted by overlapping thickness. Layers below the profile take the value
// of the bottom layer.
func (o *Profile) mapTo(values, thickness []float64, name string) []float64 {
	if values == nil || len(values) != len(o.Thick) || len(thickness) == 0 {
		return nil
	}
	if floats.Equal(o.Thick, thickness) {
		res := make([]float64, len(values))
		copy(res, values)
		return res
	}
	res := make([]float64, len(thickness))
	nl := len(o.Thick)
	bottom := o.Depth()
	var top float64
	for i, h := range thickness {
		bot := top + h
		if !(h > 0) {
			res[i] = math.NaN()
			top = bot
			continue
		}
		if bot > bottom {
			io.Pfyel("profile: %s of layer %d (%g-%g mm) extrapolated below %g mm\n", name, i, top, bot, bottom)
		}
		var sum, ptop float64
		for j, ph := range o.Thick {
			pbot := ptop + ph
			if j == nl-1 && bot > pbot {
				pbot = bot
			}
			if overlap := math.Min(bot, pbot) - math.Max(top, ptop); overlap > 0 {
				sum += overlap * values[j]
			}
			ptop += ph
		}
		res[i] = sum / h
		top = bot
	}
	return res
}
