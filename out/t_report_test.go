// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"

	"github.com/cpmech/gosoil/mdl/pore"
	"github.com/cpmech/gosoil/mdl/sample"
)

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. sample table")

	s := sample.New("init", []float64{100, 200}, sample.Fixed{Bd: []float64{1.3, 1.3}})
	require.NoError(tst, s.SetNitrate([]float64{20, math.NaN()}, sample.PPM))
	require.NoError(tst, s.SetPH([]float64{6, 7}, sample.Water))

	cols := SampleColumns(s)
	labels := make([]string, len(cols))
	for i, c := range cols {
		labels[i] = c.Label
	}
	require.Equal(tst, []string{"NO3 ppm", "NO3 kg/ha", "pH water", "pH CaCl2"}, labels)

	tab := SampleTable(s)
	io.Pf("%s", tab)
	lines := strings.Split(strings.TrimSpace(tab), "\n")
	require.Len(tst, lines, 4)
	require.Contains(tst, lines[1], "NO3 kg/ha")
	require.Contains(tst, lines[2], "0-100")
	require.Contains(tst, lines[2], "26.0000")
	require.Contains(tst, lines[3], "100-300")
	require.Contains(tst, lines[3], "            -")
}

func Test_report02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report02. pore table")

	c0, err := pore.New(0, 0, 100, 30000, 3000, 0.1)
	require.NoError(tst, err)
	c1, err := pore.New(0, 1, 100, 3000, 300, 0.2)
	require.NoError(tst, err)
	require.NoError(tst, c1.SetWaterDepth(15))
	c1.Ks = 0.5

	tab := PoreTable([]pore.Layer{{c0, c1}, nil})
	io.Pf("%s", tab)
	lines := strings.Split(strings.TrimSpace(tab), "\n")
	require.Len(tst, lines, 4)
	require.Contains(tst, lines[2], "15.0000")
	require.Contains(tst, lines[2], "0.5000")
	require.Contains(tst, lines[3], "total")
	require.Contains(tst, lines[3], "30.0000")
	require.Contains(tst, lines[3], "15.0000")
}
