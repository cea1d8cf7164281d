package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3,
every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextState is ApplyConwayRules over the 0/1 cell encoding used by the grid
func NextState(neighbors int, cell uint8) uint8 {
	if ApplyConwayRules(neighbors, cell == 1) {
		return 1
	}
	return 0
}
