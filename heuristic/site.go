package heuristic

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Site is a named point in 3-D space, the payload of spatial demo graphs.
type Site struct {
	Name string
	Pos  r3.Vec
}

// Position implements Spatial.
func (s Site) Position() r3.Vec { return s.Pos }

func (s Site) String() string {
	return fmt.Sprintf("%s(%g,%g,%g)", s.Name, s.Pos.X, s.Pos.Y, s.Pos.Z)
}
