// Package instance reads 2-interval problem instances from YAML.
//
// Format:
//
//	n: 3
//	vertices:
//	  - first: {l: 0, r: 1}
//	  - first: {l: 1, r: 2}
//	  - first: {l: 0, r: 0}
//	    second: {l: 2, r: 2}
//
// An absent bound pair means the empty interval. Structural validation
// (counts, ranges, interval ordering) is delegated to interval.NewGraph;
// this package only handles decoding.
package instance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

// Bounds is an inclusive integer range in a descriptor file.
type Bounds struct {
	L int `yaml:"l"`
	R int `yaml:"r"`
}

// VertexSpec describes one Y-vertex; a nil interval means empty.
type VertexSpec struct {
	First  *Bounds `yaml:"first,omitempty"`
	Second *Bounds `yaml:"second,omitempty"`
}

// Instance is a full problem instance descriptor.
type Instance struct {
	N        int          `yaml:"n"`
	Vertices []VertexSpec `yaml:"vertices"`
}

// Parse decodes an Instance from YAML bytes.
func Parse(data []byte) (Instance, error) {
	var ins Instance
	if err := yaml.Unmarshal(data, &ins); err != nil {
		return Instance{}, fmt.Errorf("instance: parse: %w", err)
	}

	return ins, nil
}

// Load reads and decodes an instance file.
func Load(path string) (Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, fmt.Errorf("instance: read %s: %w", path, err)
	}
	ins, err := Parse(data)
	if err != nil {
		return Instance{}, fmt.Errorf("instance: %s: %w", path, err)
	}

	return ins, nil
}

// Graph builds the validated interval.Graph the descriptor denotes.
// Structural violations surface as interval.ErrInvalidStructure wraps.
func (ins Instance) Graph() (*interval.Graph, error) {
	ys := make([]interval.YVertex, len(ins.Vertices))
	for i, vs := range ins.Vertices {
		ys[i] = interval.YVertex{
			First:  toInterval(vs.First),
			Second: toInterval(vs.Second),
		}
	}

	return interval.NewGraph(ins.N, ys)
}

func toInterval(b *Bounds) interval.Interval {
	if b == nil {
		return interval.EmptyInterval()
	}

	return interval.NewInterval(b.L, b.R)
}
