package types

// Position is a tile coordinate on a map grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is a cardinal facing on the map grid.
type Direction string

const (
	DirectionNorth Direction = "north"
	DirectionEast  Direction = "east"
	DirectionSouth Direction = "south"
	DirectionWest  Direction = "west"
)

// TurnLeft returns the direction after a 90 degree counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case DirectionNorth:
		return DirectionWest
	case DirectionWest:
		return DirectionSouth
	case DirectionSouth:
		return DirectionEast
	case DirectionEast:
		return DirectionNorth
	}
	return d
}

// TurnRight returns the direction after a 90 degree clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case DirectionNorth:
		return DirectionEast
	case DirectionEast:
		return DirectionSouth
	case DirectionSouth:
		return DirectionWest
	case DirectionWest:
		return DirectionNorth
	}
	return d
}

// Step returns the position one tile ahead in the given direction.
func (p Position) Step(d Direction) Position {
	switch d {
	case DirectionNorth:
		return Position{X: p.X, Y: p.Y - 1}
	case DirectionSouth:
		return Position{X: p.X, Y: p.Y + 1}
	case DirectionEast:
		return Position{X: p.X + 1, Y: p.Y}
	case DirectionWest:
		return Position{X: p.X - 1, Y: p.Y}
	}
	return p
}
