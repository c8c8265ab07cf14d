// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// empirical constants
const (
	WalkleyBlackFactor = 1.3    // total organic carbon = Walkley-Black × factor
	PhSlope            = 1.1045 // pH(water) = pH(CaCl2) × slope − offset
	PhOffset           = 0.1375 // see PhSlope
)

// NitrogenUnit defines units for mineral nitrogen (nitrate, ammonia)
type NitrogenUnit int

// nitrogen units
const (
	PPM    NitrogenUnit = iota // mg/kg
	KgPerHa                    // kg/ha
)

// WaterUnit defines units for soil water
type WaterUnit int

// soil water units
const (
	Volumetric  WaterUnit = iota // mm/mm
	Gravimetric                  // g/g
	MM                           // mm
)

// CarbonUnit defines units for organic carbon
type CarbonUnit int

// organic carbon units
const (
	TotalPercent        CarbonUnit = iota // total organic carbon (%)
	WalkleyBlackPercent                   // Walkley-Black organic carbon (%)
)

// PHUnit defines the extractant used to measure pH
type PHUnit int

// pH units
const (
	Water PHUnit = iota // 1:5 soil:water
	CaCl2               // 1:5 soil:CaCl2
)

var nitrogenNames = []string{"ppm", "kg/ha"}
var waterNames = []string{"mm/mm", "g/g", "mm"}
var carbonNames = []string{"total%", "walkleyblack%"}
var phNames = []string{"water", "cacl2"}

// String returns the name of this unit
func (u NitrogenUnit) String() string { return unitName(nitrogenNames, int(u)) }

// String returns the name of this unit
func (u WaterUnit) String() string { return unitName(waterNames, int(u)) }

// String returns the name of this unit
func (u CarbonUnit) String() string { return unitName(carbonNames, int(u)) }

// String returns the name of this unit
func (u PHUnit) String() string { return unitName(phNames, int(u)) }

// ParseNitrogenUnit parses "ppm" or "kg/ha"
func ParseNitrogenUnit(s string) (NitrogenUnit, error) {
	i, err := parseUnit(nitrogenNames, s, "nitrogen", map[string]int{"mg/kg": 0, "kgha": 1, "kg/ha": 1})
	return NitrogenUnit(i), err
}

// ParseWaterUnit parses "mm/mm", "g/g" or "mm". The aliases "volumetric" and
// "gravimetric" are also accepted.
func ParseWaterUnit(s string) (WaterUnit, error) {
	i, err := parseUnit(waterNames, s, "water", map[string]int{"volumetric": 0, "gravimetric": 1})
	return WaterUnit(i), err
}

// ParseCarbonUnit parses "total%" or "walkleyblack%"
func ParseCarbonUnit(s string) (CarbonUnit, error) {
	i, err := parseUnit(carbonNames, s, "carbon", map[string]int{"total": 0, "walkleyblack": 1})
	return CarbonUnit(i), err
}

// ParsePHUnit parses "water" or "cacl2"
func ParsePHUnit(s string) (PHUnit, error) {
	i, err := parseUnit(phNames, s, "pH", nil)
	return PHUnit(i), err
}

func unitName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func parseUnit(names []string, s, kind string, aliases map[string]int) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if key == name {
			return i, nil
		}
	}
	if i, ok := aliases[key]; ok {
		return i, nil
	}
	return 0, chk.Err("%s unit %q is invalid; options are %q", kind, s, names)
}
