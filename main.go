// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosoil/inp"
	"github.com/cpmech/gosoil/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnpath := io.ArgToString(0, "")
	verbose := io.ArgToBool(1, false)
	if fnpath == "" {
		io.Pf("usage: gosoil file.soil [verbose]\n")
		return
	}

	// message
	if verbose {
		io.PfWhite("\nGosoil -- soil samples and pore compartments\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"soil file (.soil, .json, .yaml)", "fnpath", fnpath,
			"show messages", "verbose", verbose,
		))
	}

	// read soil
	io.Verbose = verbose
	soil, err := inp.ReadSoil(fnpath)
	io.Verbose = true
	if err != nil {
		chk.Panic("%v", err)
	}

	// samples
	io.Pf("soil %q\n\n", soil.Name)
	for _, s := range soil.Samples {
		io.Pf("%s\n", out.SampleTable(s))
	}

	// pores
	if len(soil.Pores) > 0 {
		io.Pf("pore compartments\n%s\n", out.PoreTable(soil.Pores))
	}
}
