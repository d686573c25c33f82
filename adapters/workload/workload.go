// Package workload loads workload definition files.
// A definition file holds one or more workload blocks, each describing one
// complete estimate request.
package workload

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"compute-cost/core/catalog"
	"compute-cost/core/engine"
	"compute-cost/core/pricing"
	"compute-cost/internal/errors"
)

// Definition is one named workload block:
//
//	workload "nightly-etl" {
//	  provider            = "aws"
//	  instance_type       = "m5.xlarge"
//	  region              = "us-east-1"
//	  spot                = true
//	  tier                = "premium"
//	  class               = "interactive"
//	  nodes               = 3
//	  hours_per_run       = 2.5
//	  units_per_node_hour = 2.75
//	  runs_per_day        = 1
//	  days_per_month      = 20
//	}
type Definition struct {
	Name             string  `hcl:"name,label"`
	Provider         string  `hcl:"provider"`
	InstanceType     string  `hcl:"instance_type"`
	Region           string  `hcl:"region"`
	Spot             bool    `hcl:"spot,optional"`
	Tier             string  `hcl:"tier"`
	Class            string  `hcl:"class"`
	Nodes            int     `hcl:"nodes"`
	HoursPerRun      float64 `hcl:"hours_per_run"`
	UnitsPerNodeHour float64 `hcl:"units_per_node_hour"`
	RunsPerDay       int     `hcl:"runs_per_day"`
	DaysPerMonth     int     `hcl:"days_per_month"`
}

type definitionFile struct {
	Workloads []Definition `hcl:"workload,block"`
}

// LoadFile reads and parses a workload definition file
func LoadFile(path string) ([]Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeParsing, err, "reading %s", path)
	}
	return Parse(src, path)
}

// Parse parses workload definition source
func Parse(src []byte, filename string) ([]Definition, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("parsing %s", filename), diags)
	}

	var file definitionFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("decoding %s", filename), diags)
	}
	if len(file.Workloads) == 0 {
		return nil, errors.Newf(errors.TypeParsing, "%s defines no workload blocks", filename)
	}

	return file.Workloads, nil
}

// Request converts the definition into an engine request.
// Enum fields are parsed here; numeric bounds are the calculator's check.
func (d Definition) Request() (engine.Request, error) {
	provider, err := pricing.ParseProvider(d.Provider)
	if err != nil {
		return engine.Request{}, errors.Wrapf(errors.TypeInput, err, "workload %q", d.Name)
	}
	tier, err := catalog.ParseTier(d.Tier)
	if err != nil {
		return engine.Request{}, errors.Wrapf(errors.TypeInput, err, "workload %q", d.Name)
	}
	class, err := catalog.ParseClass(d.Class)
	if err != nil {
		return engine.Request{}, errors.Wrapf(errors.TypeInput, err, "workload %q", d.Name)
	}

	return engine.Request{
		Provider:         provider,
		InstanceType:     d.InstanceType,
		Region:           d.Region,
		Spot:             d.Spot,
		Tier:             tier,
		Class:            class,
		Nodes:            d.Nodes,
		HoursPerRun:      d.HoursPerRun,
		UnitsPerNodeHour: d.UnitsPerNodeHour,
		RunsPerDay:       d.RunsPerDay,
		DaysPerMonth:     d.DaysPerMonth,
	}, nil
}
