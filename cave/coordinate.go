package cave

import "fmt"

// Coordinate is a grid cell position.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d %d", c.X, c.Y)
}
