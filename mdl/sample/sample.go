// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sample implements laboratory soil samples whose measurements are
// stored in one unit and can be read in any of the alternative units
//  Conversions:
//   nitrate, ammonia : ppm ↔ kg/ha                 (needs bulk density)
//   soil water       : mm/mm ↔ g/g ↔ mm            (g/g needs bulk density)
//   organic carbon   : total% ↔ Walkley-Black%     (factor 1.3)
//   pH               : water ↔ CaCl2               (linear relationship)
package sample

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Quantity holds raw values tagged with the unit they are stored in
type Quantity[U comparable] struct {
	Values []float64 // one value per layer; NaN = missing value; nil = not measured
	Unit   U         // unit of Values
}

// Sample holds soil measurements per layer
type Sample struct {

	// data
	Name string // name of sample; e.g. "Initial nitrogen"

	// layers
	thick []float64 // thickness of each layer [mm]

	// convertible quantities
	no3 Quantity[NitrogenUnit] // nitrate
	nh4 Quantity[NitrogenUnit] // ammonia
	sw  Quantity[WaterUnit]    // soil water
	oc  Quantity[CarbonUnit]   // organic carbon
	ph  Quantity[PHUnit]       // pH

	// quantities with a single unit
	ec  []float64 // electrical conductivity [1:5 dS/m]
	cl  []float64 // chloride [mg/kg]
	esp []float64 // exchangeable sodium percentage [%]

	// auxiliary
	lookup Lookup // source of bulk density and C:N ratio; may be nil
}

// New returns a new sample with all quantities absent
func New(name string, thickness []float64, lookup Lookup) *Sample {
	o := &Sample{Name: name, lookup: lookup}
	o.thick = make([]float64, len(thickness))
	copy(o.thick, thickness)
	return o
}

// SetLookup replaces the source of bulk density and C:N ratio
func (o *Sample) SetLookup(lookup Lookup) {
	o.lookup = lookup
}

// NumLayers returns the number of layers
func (o *Sample) NumLayers() int {
	return len(o.thick)
}

// Thickness returns a copy of the layer thicknesses [mm]
func (o *Sample) Thickness() []float64 {
	return clone(o.thick)
}

// SetThickness replaces the layer structure. All measured quantities must
// already have len(thickness) values.
func (o *Sample) SetThickness(thickness []float64) error {
	for _, q := range o.all() {
		if q.values != nil && len(q.values) != len(thickness) {
			return chk.Err("sample %q: cannot set %d layers because %s has %d values", o.Name, len(thickness), q.name, len(q.values))
		}
	}
	o.thick = clone(thickness)
	return nil
}

// Depths returns labels such as "0-100" for each layer [mm]
func (o *Sample) Depths() []string {
	res := make([]string, len(o.thick))
	top := 0.0
	for i, h := range o.thick {
		res[i] = io.Sf("%g-%g", top, top+h)
		top += h
	}
	return res
}

// Validate checks that every measured quantity has one value per layer
func (o *Sample) Validate() error {
	for _, q := range o.all() {
		if q.values != nil && len(q.values) != len(o.thick) {
			return chk.Err("sample %q: %s has %d values but there are %d layers", o.Name, q.name, len(q.values), len(o.thick))
		}
	}
	return nil
}

// setters //////////////////////////////////////////////////////////////////////////////////////////

// SetNitrate replaces nitrate values and unit; nil clears the measurement
func (o *Sample) SetNitrate(values []float64, unit NitrogenUnit) error {
	return setQuantity(o, &o.no3, nitrogenTable, "nitrate", values, unit)
}

// SetAmmonia replaces ammonia values and unit; nil clears the measurement
func (o *Sample) SetAmmonia(values []float64, unit NitrogenUnit) error {
	return setQuantity(o, &o.nh4, nitrogenTable, "ammonia", values, unit)
}

// SetWater replaces soil water values and unit; nil clears the measurement
func (o *Sample) SetWater(values []float64, unit WaterUnit) error {
	return setQuantity(o, &o.sw, waterTable, "soil water", values, unit)
}

// SetCarbon replaces organic carbon values and unit; nil clears the measurement
func (o *Sample) SetCarbon(values []float64, unit CarbonUnit) error {
	return setQuantity(o, &o.oc, carbonTable, "organic carbon", values, unit)
}

// SetPH replaces pH values and unit; nil clears the measurement
func (o *Sample) SetPH(values []float64, unit PHUnit) error {
	return setQuantity(o, &o.ph, phTable, "pH", values, unit)
}

// SetEC replaces electrical conductivity values [1:5 dS/m]
func (o *Sample) SetEC(values []float64) (err error) {
	if err = o.checkLen("EC", values); err == nil {
		o.ec = clone(values)
	}
	return
}

// SetCL replaces chloride values [mg/kg]
func (o *Sample) SetCL(values []float64) (err error) {
	if err = o.checkLen("CL", values); err == nil {
		o.cl = clone(values)
	}
	return
}

// SetESP replaces exchangeable sodium percentage values [%]
func (o *Sample) SetESP(values []float64) (err error) {
	if err = o.checkLen("ESP", values); err == nil {
		o.esp = clone(values)
	}
	return
}

// raw data /////////////////////////////////////////////////////////////////////////////////////////

// Nitrate returns a copy of the stored nitrate values and their unit
func (o *Sample) Nitrate() Quantity[NitrogenUnit] { return cloneQ(o.no3) }

// Ammonia returns a copy of the stored ammonia values and their unit
func (o *Sample) Ammonia() Quantity[NitrogenUnit] { return cloneQ(o.nh4) }

// Water returns a copy of the stored soil water values and their unit
func (o *Sample) Water() Quantity[WaterUnit] { return cloneQ(o.sw) }

// Carbon returns a copy of the stored organic carbon values and their unit
func (o *Sample) Carbon() Quantity[CarbonUnit] { return cloneQ(o.oc) }

// PH returns a copy of the stored pH values and their unit
func (o *Sample) PH() Quantity[PHUnit] { return cloneQ(o.ph) }

// EC returns electrical conductivity [1:5 dS/m]
func (o *Sample) EC() []float64 { return clone(o.ec) }

// CL returns chloride [mg/kg]
func (o *Sample) CL() []float64 { return clone(o.cl) }

// ESP returns exchangeable sodium percentage [%]
func (o *Sample) ESP() []float64 { return clone(o.esp) }

// conversions //////////////////////////////////////////////////////////////////////////////////////

// NitrateIn returns nitrate in the given unit; nil if not available
func (o *Sample) NitrateIn(unit NitrogenUnit) ([]float64, error) {
	return convert(nitrogenTable, o.no3.Values, o.no3.Unit, unit, o.layers(true))
}

// AmmoniaIn returns ammonia in the given unit; nil if not available
func (o *Sample) AmmoniaIn(unit NitrogenUnit) ([]float64, error) {
	return convert(nitrogenTable, o.nh4.Values, o.nh4.Unit, unit, o.layers(true))
}

// WaterIn returns soil water in the given unit; nil if not available
func (o *Sample) WaterIn(unit WaterUnit) ([]float64, error) {
	return convert(waterTable, o.sw.Values, o.sw.Unit, unit, o.layers(true))
}

// CarbonIn returns organic carbon in the given unit; nil if not available
func (o *Sample) CarbonIn(unit CarbonUnit) ([]float64, error) {
	return convert(carbonTable, o.oc.Values, o.oc.Unit, unit, o.layers(false))
}

// PHIn returns pH in the given unit; nil if not available
func (o *Sample) PHIn(unit PHUnit) ([]float64, error) {
	return convert(phTable, o.ph.Values, o.ph.Unit, unit, o.layers(false))
}

// NitratePPM returns nitrate [ppm]
func (o *Sample) NitratePPM() []float64 { return must(o.NitrateIn(PPM)) }

// NitrateKgHa returns nitrate [kg/ha]
func (o *Sample) NitrateKgHa() []float64 { return must(o.NitrateIn(KgPerHa)) }

// AmmoniaPPM returns ammonia [ppm]
func (o *Sample) AmmoniaPPM() []float64 { return must(o.AmmoniaIn(PPM)) }

// AmmoniaKgHa returns ammonia [kg/ha]
func (o *Sample) AmmoniaKgHa() []float64 { return must(o.AmmoniaIn(KgPerHa)) }

// WaterVolumetric returns soil water [mm/mm]
func (o *Sample) WaterVolumetric() []float64 { return must(o.WaterIn(Volumetric)) }

// WaterGravimetric returns soil water [g/g]
func (o *Sample) WaterGravimetric() []float64 { return must(o.WaterIn(Gravimetric)) }

// WaterMM returns soil water [mm]
func (o *Sample) WaterMM() []float64 { return must(o.WaterIn(MM)) }

// CarbonTotal returns total organic carbon [%]
func (o *Sample) CarbonTotal() []float64 { return must(o.CarbonIn(TotalPercent)) }

// CarbonWalkleyBlack returns Walkley-Black organic carbon [%]
func (o *Sample) CarbonWalkleyBlack() []float64 { return must(o.CarbonIn(WalkleyBlackPercent)) }

// PHWater returns pH measured in water
func (o *Sample) PHWater() []float64 { return must(o.PHIn(Water)) }

// PHCaCl2 returns pH measured in CaCl2
func (o *Sample) PHCaCl2() []float64 { return must(o.PHIn(CaCl2)) }

// OrganicNitrogen returns organic nitrogen [%] = total organic carbon ÷ C:N ratio
func (o *Sample) OrganicNitrogen() []float64 {
	oc := o.CarbonTotal()
	if oc == nil {
		return nil
	}
	cnr := o.carbonNitrogenRatio()
	if cnr == nil {
		return nil
	}
	floats.Div(oc, cnr)
	return oc
}

// unit changes /////////////////////////////////////////////////////////////////////////////////////

// ChangeNitrateUnit converts the stored nitrate values to unit
func (o *Sample) ChangeNitrateUnit(unit NitrogenUnit) error {
	return changeUnit(&o.no3, nitrogenTable, unit, o.layers(true), "nitrate")
}

// ChangeAmmoniaUnit converts the stored ammonia values to unit
func (o *Sample) ChangeAmmoniaUnit(unit NitrogenUnit) error {
	return changeUnit(&o.nh4, nitrogenTable, unit, o.layers(true), "ammonia")
}

// ChangeWaterUnit converts the stored soil water values to unit
func (o *Sample) ChangeWaterUnit(unit WaterUnit) error {
	return changeUnit(&o.sw, waterTable, unit, o.layers(true), "soil water")
}

// ChangeCarbonUnit converts the stored organic carbon values to unit
func (o *Sample) ChangeCarbonUnit(unit CarbonUnit) error {
	return changeUnit(&o.oc, carbonTable, unit, o.layers(false), "organic carbon")
}

// ChangePHUnit converts the stored pH values to unit
func (o *Sample) ChangePHUnit(unit PHUnit) error {
	return changeUnit(&o.ph, phTable, unit, o.layers(false), "pH")
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// setQuantity replaces q after checking the number of values and the unit
func setQuantity[U comparable](o *Sample, q *Quantity[U], table map[pair[U]]conversion, name string, values []float64, unit U) error {
	if err := o.checkLen(name, values); err != nil {
		return err
	}
	if _, ok := table[pair[U]{unit, unit}]; !ok {
		return chk.Err("sample %q: %s unit %v is invalid", o.Name, name, unit)
	}
	*q = Quantity[U]{clone(values), unit}
	return nil
}

// changeUnit converts q to unit. q is not modified on failure
func changeUnit[U comparable](q *Quantity[U], table map[pair[U]]conversion, unit U, l layers, name string) error {
	if q.Unit == unit {
		return nil
	}
	if _, ok := table[pair[U]{unit, unit}]; !ok {
		return chk.Err("%s unit %v is invalid", name, unit)
	}
	if q.Values == nil {
		q.Unit = unit
		return nil
	}
	v, err := convert(table, q.Values, q.Unit, unit, l)
	if err != nil {
		return err
	}
	if v == nil {
		return chk.Err("cannot convert %s from %v to %v: bulk density is not available", name, q.Unit, unit)
	}
	q.Values, q.Unit = v, unit
	return nil
}

// layers returns the layer data for conversions
func (o *Sample) layers(withBd bool) layers {
	l := layers{thick: o.thick}
	if withBd {
		l.bd = o.bulkDensity()
	}
	return l
}

// bulkDensity returns bulk density from lookup; nil if not available
func (o *Sample) bulkDensity() []float64 {
	if o.lookup == nil {
		return nil
	}
	bd := o.lookup.BulkDensity(clone(o.thick))
	if len(bd) != len(o.thick) {
		return nil
	}
	return bd
}

// carbonNitrogenRatio returns C:N ratio from lookup; nil if not available
func (o *Sample) carbonNitrogenRatio() []float64 {
	if o.lookup == nil {
		return nil
	}
	cnr := o.lookup.CarbonNitrogenRatio(clone(o.thick))
	if len(cnr) != len(o.thick) {
		return nil
	}
	return cnr
}

// checkLen checks the number of values of a quantity
func (o *Sample) checkLen(name string, values []float64) error {
	if values != nil && len(values) != len(o.thick) {
		return chk.Err("sample %q: %s must have %d values (one per layer); %d given", o.Name, name, len(o.thick), len(values))
	}
	return nil
}

type named struct {
	name   string
	values []float64
}

// all returns all quantities with their names
func (o *Sample) all() []named {
	return []named{
		{"nitrate", o.no3.Values},
		{"ammonia", o.nh4.Values},
		{"soil water", o.sw.Values},
		{"organic carbon", o.oc.Values},
		{"pH", o.ph.Values},
		{"EC", o.ec},
		{"CL", o.cl},
		{"ESP", o.esp},
	}
}

// must drops the error of conversions whose unit pair is always in the table
func must(v []float64, err error) []float64 {
	if err != nil {
		chk.Panic("%v", err)
	}
	return v
}

func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	res := make([]float64, len(v))
	copy(res, v)
	return res
}

func cloneQ[U comparable](q Quantity[U]) Quantity[U] {
	return Quantity[U]{clone(q.Values), q.Unit}
}
