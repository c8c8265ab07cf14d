// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pore

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_pore01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pore01. capacity")

	c, err := New(2, 1, 50, 3000, 300, 0.4)
	require.NoError(tst, err)
	chk.Float64(tst, "VolumeDepth", 1e-15, c.VolumeDepth(), 20)

	// within tolerance: stored as given
	require.NoError(tst, c.SetWaterDepth(20.0000000001))
	chk.Float64(tst, "WaterDepth", 0, c.WaterDepth(), 20.0000000001)

	// overfill
	err = c.SetWaterDepth(20.01)
	require.Error(tst, err)
	require.True(tst, errors.Is(err, ErrPoreOverfill))
	var over *OverfillError
	require.True(tst, errors.As(err, &over))
	require.Equal(tst, 2, over.Layer)
	require.Equal(tst, 1, over.Compartment)
	chk.Float64(tst, "Value", 0, over.Value, 20.01)
	chk.Float64(tst, "Capacity", 1e-15, over.Capacity, 20)
	chk.Float64(tst, "WaterDepth kept", 0, c.WaterDepth(), 20.0000000001)
	io.Pforan("%v\n", err)

	// 2ε above capacity
	err = c.SetWaterDepth(c.VolumeDepth() + 2*Tol)
	require.True(tst, errors.Is(err, ErrPoreOverfill))
}

func Test_pore02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pore02. negative water")

	c, err := New(0, 3, 100, 30000, 3000, 0.1)
	require.NoError(tst, err)
	require.NoError(tst, c.SetWaterDepth(5))

	// small negative values are clamped
	require.NoError(tst, c.SetWaterDepth(-0.5*Tol))
	chk.Float64(tst, "WaterDepth", 0, c.WaterDepth(), 0)
	require.False(tst, math.Signbit(c.WaterDepth()))

	// invalid
	require.NoError(tst, c.SetWaterDepth(1))
	err = c.SetWaterDepth(-2 * Tol)
	require.True(tst, errors.Is(err, ErrInvalidWaterDepth))
	require.False(tst, errors.Is(err, ErrPoreOverfill))
	var inv *InvalidWaterDepthError
	require.True(tst, errors.As(err, &inv))
	require.Equal(tst, 0, inv.Layer)
	require.Equal(tst, 3, inv.Compartment)
	chk.Float64(tst, "WaterDepth kept", 0, c.WaterDepth(), 1)

	// NaN
	err = c.SetWaterDepth(math.NaN())
	require.True(tst, errors.Is(err, ErrInvalidWaterDepth))
	chk.Float64(tst, "WaterDepth kept", 0, c.WaterDepth(), 1)

	// increments
	require.NoError(tst, c.AddWater(-1-0.5*Tol))
	chk.Float64(tst, "WaterDepth after removal", 0, c.WaterDepth(), 0)
	require.True(tst, errors.Is(c.AddWater(-1e-3), ErrInvalidWaterDepth))
}

func Test_pore03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pore03. derived quantities")

	c, err := New(1, 0, 150, 1e5, 3e4, 0.12)
	require.NoError(tst, err)
	c.Ks = 42
	chk.Float64(tst, "ConductivityIn", 0, c.ConductivityIn(), 42)
	chk.Float64(tst, "ConductivityOut", 0, c.ConductivityOut(), 42)

	// sequence of writes from empty to full and beyond
	vd := c.VolumeDepth()
	for _, w := range utl.LinSpace(-0.9*Tol, vd+0.9*Tol, 31) {
		require.NoError(tst, c.SetWaterDepth(w))
		require.True(tst, c.WaterDepth() >= 0)
		require.True(tst, c.WaterDepth() <= vd+Tol)
		chk.Float64(tst, "θw + θa = vfrac", 1e-15, c.WaterFilledFraction()+c.AirFilledFraction(), c.VolumeFraction())
		chk.Float64(tst, "air + water = volume", 1e-12, c.AirDepth()+c.WaterDepth(), vd)
	}

	// particular state
	require.NoError(tst, c.SetWaterDepth(6))
	chk.Float64(tst, "WaterFilledFraction", 1e-15, c.WaterFilledFraction(), 0.04)
	chk.Float64(tst, "AirFilledFraction", 1e-15, c.AirFilledFraction(), 0.08)
	chk.Float64(tst, "AirDepth", 1e-12, c.AirDepth(), 12)
}

func Test_pore04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pore04. geometry and parameters")

	_, err := New(0, 0, 0, 10, 1, 0.1)
	require.Error(tst, err)
	_, err = New(0, 0, 100, 10, 1, 1.5)
	require.Error(tst, err)
	_, err = New(0, 0, 100, 1, 10, 0.1)
	require.Error(tst, err)

	var c Compartment
	prms := c.GetPrms(true)
	require.NoError(tst, c.Init(4, 2, prms))
	chk.Float64(tst, "thick", 0, c.Thickness(), 100)
	chk.Float64(tst, "dmax", 0, c.MaxDiameter(), 30000)
	chk.Float64(tst, "dmin", 0, c.MinDiameter(), 3000)
	chk.Float64(tst, "vfrac", 0, c.VolumeFraction(), 0.08)
	chk.Float64(tst, "Ks", 0, c.Ks, 12)
	require.Equal(tst, 4, c.Layer())
	require.Equal(tst, 2, c.Index())

	// initial water
	prms = c.GetPrms(false)
	prms.Find("water").V = 3
	var d Compartment
	require.NoError(tst, d.Init(4, 2, prms))
	chk.Float64(tst, "water", 0, d.WaterDepth(), 3)
	prms.Find("water").V = 9
	require.True(tst, errors.Is(d.Init(4, 2, prms), ErrPoreOverfill))

	// unknown parameter
	prms = append(prms, &dbf.P{N: "porosity", V: 0.4})
	require.Error(tst, d.Init(4, 2, prms))
}

func Test_pore05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pore05. layer")

	diams := []float64{1e5, 3e4, 3e3, 3e2}
	vfrac := []float64{0.05, 0.10, 0.15}
	lay := make(Layer, len(vfrac))
	for i := range vfrac {
		var err error
		lay[i], err = New(0, i, 200, diams[i], diams[i+1], vfrac[i])
		require.NoError(tst, err)
	}
	require.NoError(tst, lay.Check())
	chk.Float64(tst, "Porosity", 1e-15, lay.Porosity(), 0.30)
	chk.Float64(tst, "VolumeDepth", 1e-12, lay.VolumeDepth(), 60)

	require.NoError(tst, lay.AddWater(2, 30))
	require.NoError(tst, lay.AddWater(1, 5))
	chk.Float64(tst, "WaterDepth", 1e-12, lay.WaterDepth(), 35)
	chk.Float64(tst, "AirDepth", 1e-12, lay.AirDepth(), 25)
	chk.Float64(tst, "WaterFilledFraction", 1e-15, lay.WaterFilledFraction(), 0.175)
	require.Equal(tst, []float64{0, 5, 30}, lay.WaterDepths())

	// errors
	require.True(tst, errors.Is(lay.AddWater(2, 1), ErrPoreOverfill))
	require.Error(tst, lay.AddWater(3, 1))

	// inconsistent layers
	bad, _ := New(1, 3, 200, 300, 30, 0.1)
	require.Error(tst, append(lay, bad).Check())
	bad, _ = New(0, 3, 100, 300, 30, 0.1)
	require.Error(tst, append(lay, bad).Check())
	bad, _ = New(0, 3, 200, 3e4, 30, 0.1)
	require.Error(tst, append(lay, bad).Check())
	bad, _ = New(0, 3, 200, 300, 30, 0.8)
	require.Error(tst, append(lay, bad).Check())
	bad, _ = New(0, 3, 200, 300, 30, 0.1)
	require.NoError(tst, append(lay, bad).Check())
}
