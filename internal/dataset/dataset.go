// Package dataset loads named point sets from YAML files and provides the
// built-in Medellín sample.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geograph/builder"
	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/geo"
)

// ErrEmptyDataset indicates a dataset without points.
var ErrEmptyDataset = errors.New("dataset: no points")

// Dataset is the YAML document structure:
//
//	source: 0
//	points:
//	  - name: D1 Centro
//	    lat: 6.2442
//	    lon: -75.5812
type Dataset struct {
	Name   string      `yaml:"name,omitempty"`
	Source int         `yaml:"source,omitempty"`
	Points []geo.Point `yaml:"points"`
}

// Load reads and parses the YAML dataset at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Parse decodes a YAML dataset. Unknown fields are rejected.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if len(ds.Points) == 0 {
		return nil, ErrEmptyDataset
	}

	return &ds, nil
}

// Graph builds a complete graph of the dataset points in file order.
func (d *Dataset) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	opts = append([]core.GraphOption{core.WithCapacity(len(d.Points))}, opts...)

	return builder.BuildGraph(opts, nil, builder.Points(d.Points...))
}

// Medellin returns the five-store sample used by the CLI when no dataset
// file is given.
func Medellin() *Dataset {
	return &Dataset{
		Name:   "medellin",
		Source: 0,
		Points: []geo.Point{
			geo.NewPoint("D1 Centro", 6.2442, -75.5812),
			geo.NewPoint("D1 Poblado", 6.2084, -75.5687),
			geo.NewPoint("D1 Laureles", 6.2453, -75.5939),
			geo.NewPoint("D1 Belén", 6.2308, -75.6075),
			geo.NewPoint("D1 Envigado", 6.1664, -75.5836),
		},
	}
}
