package rules

/*
Next applies Conway's Game of Life rules to a cell given its live neighbor count.

	Alive, < 2    -> Dead  (underpopulation)
	Alive, 2 or 3 -> Alive
	Alive, > 3    -> Dead  (overpopulation)
	Dead,  3      -> Alive (reproduction)
	otherwise     -> unchanged

alive is the current state; the return value is the next state.
*/
func Next(alive bool, neighbors uint8) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}
