// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"

	"github.com/cpmech/gosoil/mdl/pore"
	"github.com/cpmech/gosoil/mdl/sample"
)

// Values holds measurements where null means missing value
type Values []*float64

// Floats returns values with missing entries set to NaN; nil if o is nil
func (o Values) Floats() []float64 {
	if o == nil {
		return nil
	}
	res := make([]float64, len(o))
	for i, v := range o {
		if v == nil {
			res[i] = math.NaN()
		} else {
			res[i] = *v
		}
	}
	return res
}

// LayerData holds input data of one layer of the soil profile
type LayerData struct {
	Thick float64  `json:"thick" yaml:"thick"` // thickness [mm]
	Bd    *float64 `json:"bd" yaml:"bd"`       // bulk density [g/cm³]
	Cnr   *float64 `json:"cnr" yaml:"cnr"`     // carbon-nitrogen ratio
}

// QuantityData holds input data of a quantity measured in some unit
type QuantityData struct {
	Values Values `json:"values" yaml:"values"` // one value per layer
	Unit   string `json:"unit" yaml:"unit"`     // e.g. "ppm", "kg/ha", "mm/mm", "walkleyblack%", "cacl2"
}

// SampleData holds input data of one soil sample
type SampleData struct {
	Name  string        `json:"name" yaml:"name"`   // name of sample
	Thick []float64     `json:"thick" yaml:"thick"` // thickness of each layer [mm]; profile layers if empty
	NO3   *QuantityData `json:"no3" yaml:"no3"`     // nitrate
	NH4   *QuantityData `json:"nh4" yaml:"nh4"`     // ammonia
	SW    *QuantityData `json:"sw" yaml:"sw"`       // soil water
	OC    *QuantityData `json:"oc" yaml:"oc"`       // organic carbon
	PH    *QuantityData `json:"ph" yaml:"ph"`       // pH
	EC    Values        `json:"ec" yaml:"ec"`       // electrical conductivity [1:5 dS/m]
	CL    Values        `json:"cl" yaml:"cl"`       // chloride [mg/kg]
	ESP   Values        `json:"esp" yaml:"esp"`     // exchangeable sodium percentage [%]
}

// PoreData holds the pore-size classes of one layer
type PoreData struct {
	Layer   int          `json:"layer" yaml:"layer"`     // index of profile layer
	Classes []dbf.Params `json:"classes" yaml:"classes"` // parameters of each compartment; see pore.Compartment.Init
}

// SoilData holds all data in a .soil file
type SoilData struct {
	Name    string        `json:"name" yaml:"name"`       // name of soil
	Layers  []*LayerData  `json:"layers" yaml:"layers"`   // soil profile
	Samples []*SampleData `json:"samples" yaml:"samples"` // laboratory samples
	Pores   []*PoreData   `json:"pores" yaml:"pores"`     // pore-size classes
}

// Soil holds a soil profile, its samples and pore compartments
type Soil struct {
	Name    string           // name of soil
	Profile *Profile         // profile; lookup for samples
	Samples []*sample.Sample // samples
	Pores   []pore.Layer     // compartments of each profile layer; empty if not given
}

// ReadSoil reads a .soil file. Files with extension .yaml or .yml are decoded
// as YAML; anything else as JSON.
func ReadSoil(fnpath string) (soil *Soil, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read soil file %q: %v", fnpath, err)
	}
	ext := strings.ToLower(filepath.Ext(fnpath))
	return DecodeSoil(b, ext == ".yaml" || ext == ".yml")
}

// DecodeSoil decodes and builds a soil from JSON or YAML data
func DecodeSoil(b []byte, isYaml bool) (soil *Soil, err error) {
	var dat SoilData
	if isYaml {
		err = yaml.Unmarshal(b, &dat)
	} else {
		err = json.Unmarshal(b, &dat)
	}
	if err != nil {
		return nil, chk.Err("cannot decode soil data: %v", err)
	}
	return dat.Build()
}

// Build builds the soil
func (o *SoilData) Build() (soil *Soil, err error) {

	// profile
	soil = &Soil{Name: o.Name}
	nl := len(o.Layers)
	thick := make([]float64, nl)
	var bd, cnr []float64
	hasBd, hasCnr := nl > 0, nl > 0
	for i, l := range o.Layers {
		thick[i] = l.Thick
		hasBd = hasBd && l.Bd != nil
		hasCnr = hasCnr && l.Cnr != nil
	}
	if hasBd {
		bd = make([]float64, nl)
		for i, l := range o.Layers {
			bd[i] = *l.Bd
		}
	}
	if hasCnr {
		cnr = make([]float64, nl)
		for i, l := range o.Layers {
			cnr[i] = *l.Cnr
		}
	}
	soil.Profile, err = NewProfile(thick, bd, cnr)
	if err != nil {
		return nil, chk.Err("soil %q: %v", o.Name, err)
	}
	io.Pforan("soil %q: %d layers, depth = %g mm\n", o.Name, nl, soil.Profile.Depth())

	// samples
	for i, sd := range o.Samples {
		var s *sample.Sample
		s, err = sd.build(soil.Profile)
		if err != nil {
			return nil, fmt.Errorf("soil %q: sample %d: %w", o.Name, i, err)
		}
		io.Pforan("sample %q: %d layers\n", s.Name, s.NumLayers())
		soil.Samples = append(soil.Samples, s)
	}

	// pores
	if len(o.Pores) > 0 {
		soil.Pores = make([]pore.Layer, nl)
		for _, pd := range o.Pores {
			if pd.Layer < 0 || pd.Layer >= nl {
				return nil, chk.Err("soil %q: pore layer index %d is out of range [0, %d)", o.Name, pd.Layer, nl)
			}
			if soil.Pores[pd.Layer] != nil {
				return nil, chk.Err("soil %q: pore classes of layer %d given twice", o.Name, pd.Layer)
			}
			soil.Pores[pd.Layer], err = pd.build(thick[pd.Layer])
			if err != nil {
				return nil, fmt.Errorf("soil %q: %w", o.Name, err)
			}
			io.Pforan("layer %d: %d pore compartments\n", pd.Layer, len(pd.Classes))
		}
	}
	return
}

// build builds a sample whose bulk density and C:N ratio come from profile
func (o *SampleData) build(profile *Profile) (s *sample.Sample, err error) {
	thick := o.Thick
	if len(thick) == 0 {
		thick = profile.Thick
	}
	s = sample.New(o.Name, thick, profile)
	if o.NO3 != nil {
		unit, e := sample.ParseNitrogenUnit(o.NO3.Unit)
		if e != nil {
			return nil, e
		}
		if err = s.SetNitrate(o.NO3.Values.Floats(), unit); err != nil {
			return
		}
	}
	if o.NH4 != nil {
		unit, e := sample.ParseNitrogenUnit(o.NH4.Unit)
		if e != nil {
			return nil, e
		}
		if err = s.SetAmmonia(o.NH4.Values.Floats(), unit); err != nil {
			return
		}
	}
	if o.SW != nil {
		unit, e := sample.ParseWaterUnit(o.SW.Unit)
		if e != nil {
			return nil, e
		}
		if err = s.SetWater(o.SW.Values.Floats(), unit); err != nil {
			return
		}
	}
	if o.OC != nil {
		unit, e := sample.ParseCarbonUnit(o.OC.Unit)
		if e != nil {
			return nil, e
		}
		if err = s.SetCarbon(o.OC.Values.Floats(), unit); err != nil {
			return
		}
	}
	if o.PH != nil {
		unit, e := sample.ParsePHUnit(o.PH.Unit)
		if e != nil {
			return nil, e
		}
		if err = s.SetPH(o.PH.Values.Floats(), unit); err != nil {
			return
		}
	}
	if err = s.SetEC(o.EC.Floats()); err != nil {
		return
	}
	if err = s.SetCL(o.CL.Floats()); err != nil {
		return
	}
	if err = s.SetESP(o.ESP.Floats()); err != nil {
		return
	}
	return s, s.Validate()
}

// build builds the compartments of one layer, sorted from the largest to the
// smallest pores. The layer thickness is used when "thick" is not given.
func (o *PoreData) build(thick float64) (lay pore.Layer, err error) {
	classes := make([]dbf.Params, len(o.Classes))
	copy(classes, o.Classes)
	sort.SliceStable(classes, func(i, j int) bool {
		return dmax(classes[i]) > dmax(classes[j])
	})
	lay = make(pore.Layer, len(classes))
	for i, prms := range classes {
		if prms.Find("thick") == nil {
			prms = append(dbf.Params{&dbf.P{N: "thick", V: thick}}, prms...)
		}
		lay[i] = new(pore.Compartment)
		if err = lay[i].Init(o.Layer, i, prms); err != nil {
			return nil, err
		}
	}
	return lay, lay.Check()
}

func dmax(prms dbf.Params) float64 {
	if p := prms.Find("dmax"); p != nil {
		return p.V
	}
	return 0
}
