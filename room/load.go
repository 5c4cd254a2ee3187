package room

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roompath/astar"
)

// File is the on-disk YAML layout of a room template.
//
//	id: armoury
//	lower_bounds: {x: -2, y: -1}
//	upper_bounds: {x: 1, y: 1}
//	cell_size: {x: 1, y: 1}
//	origin: {x: 0, y: 0}
//	penalties:        # one row per y, lowest y first; 0 = impassable
//	  - [1, 1, 1, 1]
//	  - [1, 0, 0, 1]
//	  - [1, 1, 1, 1]
type File struct {
	ID          string           `yaml:"id"`
	LowerBounds astar.Point      `yaml:"lower_bounds"`
	UpperBounds astar.Point      `yaml:"upper_bounds"`
	CellSize    astar.WorldPoint `yaml:"cell_size"`
	Origin      astar.WorldPoint `yaml:"origin"`
	Penalties   [][]int          `yaml:"penalties"`
}

// Parse decodes a YAML room template and builds the Room.
// A missing cell_size defaults to unit cells.
func Parse(data []byte, opts ...Option) (*Room, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing room: %w", err)
	}
	tr := Transform{CellSize: f.CellSize, Origin: f.Origin}
	if tr.CellSize == (astar.WorldPoint{}) {
		tr.CellSize = DefaultTransform().CellSize
	}

	return New(f.ID, f.LowerBounds, f.UpperBounds, tr, f.Penalties, opts...)
}

// Load reads and parses a YAML room template from path.
func Load(path string, opts ...Option) (*Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading room from %s: %w", path, err)
	}
	return r, nil
}

// Marshal encodes r back into the YAML template layout.
func (r *Room) Marshal() ([]byte, error) {
	return yaml.Marshal(File{
		ID:          r.ID,
		LowerBounds: r.Lower,
		UpperBounds: r.Upper,
		CellSize:    r.Transform.CellSize,
		Origin:      r.Transform.Origin,
		Penalties:   r.Penalties.CellValues,
	})
}
