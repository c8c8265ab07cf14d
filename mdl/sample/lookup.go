// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

// Lookup gives per-layer soil properties for a given layer structure.
// Implementations return nil when the property is unknown; a result whose
// length differs from len(thickness) is treated as unknown.
type Lookup interface {
	BulkDensity(thickness []float64) []float64         // bulk density [g/cm³] per layer
	CarbonNitrogenRatio(thickness []float64) []float64 // C:N ratio of organic matter per layer
}

// Fixed implements Lookup with values already given per layer
type Fixed struct {
	Bd  []float64 // bulk density [g/cm³]
	Cnr []float64 // carbon-nitrogen ratio
}

// BulkDensity returns a copy of Bd if it matches the number of layers
func (o Fixed) BulkDensity(thickness []float64) []float64 {
	return fixedCopy(o.Bd, len(thickness))
}

// CarbonNitrogenRatio returns a copy of Cnr if it matches the number of layers
func (o Fixed) CarbonNitrogenRatio(thickness []float64) []float64 {
	return fixedCopy(o.Cnr, len(thickness))
}

func fixedCopy(v []float64, n int) []float64 {
	if v == nil || len(v) != n {
		return nil
	}
	res := make([]float64, n)
	copy(res, v)
	return res
}
