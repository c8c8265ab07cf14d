// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pore

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// error kinds; use errors.Is to test
var (
	ErrInvalidWaterDepth = chk.Err("invalid water depth")
	ErrPoreOverfill      = chk.Err("pore overfill")
)

// InvalidWaterDepthError reports a negative water depth
type InvalidWaterDepthError struct {
	Layer       int     // layer index
	Compartment int     // pore compartment index within layer
	Value       float64 // rejected water depth [mm]
}

func (e *InvalidWaterDepthError) Error() string {
	return io.Sf("layer %d, pore compartment %d: water depth cannot be negative; %g given", e.Layer, e.Compartment, e.Value)
}

func (e *InvalidWaterDepthError) Unwrap() error { return ErrInvalidWaterDepth }

// OverfillError reports a water depth greater than the pore volume
type OverfillError struct {
	Layer       int     // layer index
	Compartment int     // pore compartment index within layer
	Value       float64 // rejected water depth [mm]
	Capacity    float64 // volume depth of the compartment [mm]
}

func (e *OverfillError) Error() string {
	return io.Sf("layer %d, pore compartment %d: water depth %g exceeds pore volume %g", e.Layer, e.Compartment, e.Value, e.Capacity)
}

func (e *OverfillError) Unwrap() error { return ErrPoreOverfill }
